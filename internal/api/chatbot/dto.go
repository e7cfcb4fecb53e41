package chatbot

import (
	"GlamoraBackend/pkg/conversation"
	"time"
)

type ChatRequest struct {
	Input     string `json:"input" validate:"max=1000"`
	SessionID string `json:"sessionId" validate:"omitempty,max=128,printascii"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"sessionId"`
	Intent    string `json:"intent"`
}

type ClassifyRequest struct {
	Input string `json:"input" validate:"required,max=1000"`
}

type ClassifyResponse struct {
	Input      string            `json:"input"`
	Active     string            `json:"active"`
	Strategies map[string]string `json:"strategies"`
}

type IntentResponse struct {
	Name    string   `json:"name"`
	Phrases []string `json:"phrases"`
}

type IntentListResponse struct {
	Default string           `json:"default"`
	Intents []IntentResponse `json:"intents"`
}

type TurnResponse struct {
	Intent string    `json:"intent"`
	Query  string    `json:"query"`
	At     time.Time `json:"at"`
}

type SessionResponse struct {
	SessionID   string         `json:"sessionId"`
	History     []TurnResponse `json:"history"`
	Preferences []string       `json:"preferences"`
	LastIntent  string         `json:"lastIntent,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func NewSessionResponse(convo *conversation.Context) SessionResponse {
	history := make([]TurnResponse, 0, len(convo.History))
	for _, turn := range convo.History {
		history = append(history, TurnResponse{
			Intent: turn.Intent.String(),
			Query:  turn.Query,
			At:     turn.At,
		})
	}

	return SessionResponse{
		SessionID:   convo.SessionID,
		History:     history,
		Preferences: append([]string{}, convo.Preferences...),
		LastIntent:  convo.LastIntent.String(),
		CreatedAt:   convo.CreatedAt,
		UpdatedAt:   convo.UpdatedAt,
	}
}
