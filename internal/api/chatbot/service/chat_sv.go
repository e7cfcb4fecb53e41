package chatbotService

import (
	"GlamoraBackend/internal/api/chatbot"
	contextPkg "GlamoraBackend/pkg/context"
	"context"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

const maxInputLength = 1000

// Chat classifies one message, answers it from the session's state before
// the message and then records the turn. Messages of one session are
// processed one at a time in arrival order.
func (s *chatbotService) Chat(ctx context.Context, req chatbot.ChatRequest) (*chatbot.ChatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !utf8.ValidString(req.Input) || utf8.RuneCountInString(req.Input) > maxInputLength {
		return nil, chatbot.ErrInvalidInput
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		id, err := s.utils.NewULIDFromTimestamp(s.now())
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to generate session id")
			return nil, err
		}
		sessionID = id
	}

	unlock, err := s.locks.Lock(ctx, sessionID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Timed out waiting for session")
		return nil, chatbot.ErrSessionBusy
	}
	defer unlock()

	in := s.classifier.Classify(req.Input)

	convo, err := s.store.Get(ctx, sessionID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load session context")
		return nil, chatbot.ErrSessionStore
	}

	answer := s.generate(ctx, turn{input: req.Input, intent: in, session: convo})

	if err := s.store.Update(ctx, sessionID, in, req.Input, answer.preferences...); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to update session context")
		return nil, chatbot.ErrSessionStore
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": sessionID,
		"intent":     in.String(),
	}).Debug("Chat message answered")

	return &chatbot.ChatResponse{
		Response:  answer.text,
		SessionID: sessionID,
		Intent:    in.String(),
	}, nil
}

func (s *chatbotService) Classify(_ context.Context, req chatbot.ClassifyRequest) *chatbot.ClassifyResponse {
	resp := &chatbot.ClassifyResponse{
		Input:      req.Input,
		Active:     s.classifier.Name(),
		Strategies: make(map[string]string, len(s.strategies)),
	}
	for _, c := range s.strategies {
		resp.Strategies[c.Name()] = c.Classify(req.Input).String()
	}
	return resp
}

func (s *chatbotService) Intents(context.Context) *chatbot.IntentListResponse {
	resp := &chatbot.IntentListResponse{
		Default: s.taxonomy.Default.String(),
		Intents: make([]chatbot.IntentResponse, 0, len(s.taxonomy.Intents)),
	}
	for _, def := range s.taxonomy.Intents {
		resp.Intents = append(resp.Intents, chatbot.IntentResponse{
			Name:    def.Name.String(),
			Phrases: append([]string{}, def.Phrases...),
		})
	}
	return resp
}

func (s *chatbotService) GetSession(ctx context.Context, sessionID string) (*chatbot.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	exists, err := s.store.Exists(ctx, sessionID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to check session")
		return nil, chatbot.ErrSessionStore
	}
	if !exists {
		return nil, chatbot.ErrSessionNotFound
	}

	convo, err := s.store.Get(ctx, sessionID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load session context")
		return nil, chatbot.ErrSessionStore
	}

	resp := chatbot.NewSessionResponse(convo)
	return &resp, nil
}

func (s *chatbotService) ResetSession(ctx context.Context, sessionID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	unlock, err := s.locks.Lock(ctx, sessionID)
	if err != nil {
		return chatbot.ErrSessionBusy
	}
	defer unlock()

	exists, err := s.store.Exists(ctx, sessionID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to check session")
		return chatbot.ErrSessionStore
	}
	if !exists {
		return chatbot.ErrSessionNotFound
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to delete session")
		return chatbot.ErrSessionStore
	}

	return nil
}
