package chatbotService

import (
	"GlamoraBackend/internal/api/chatbot"
	orderRepository "GlamoraBackend/internal/api/order/repository"
	"GlamoraBackend/pkg/conversation"
	"GlamoraBackend/pkg/intent"
	"GlamoraBackend/pkg/search"
	"GlamoraBackend/pkg/utils"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type IChatbotService interface {
	Chat(ctx context.Context, req chatbot.ChatRequest) (*chatbot.ChatResponse, error)
	GenerateResponse(ctx context.Context, input string, in intent.Intent, sessionID string, convo *conversation.Context) string
	Classify(ctx context.Context, req chatbot.ClassifyRequest) *chatbot.ClassifyResponse
	Intents(ctx context.Context) *chatbot.IntentListResponse
	GetSession(ctx context.Context, sessionID string) (*chatbot.SessionResponse, error)
	ResetSession(ctx context.Context, sessionID string) error
}

type chatbotService struct {
	log        *logrus.Logger
	cfg        Config
	taxonomy   intent.Taxonomy
	classifier intent.Classifier
	strategies []intent.Classifier
	store      conversation.Store
	locks      *conversation.KeyedMutex
	engine     search.IEngine
	orderRepo  orderRepository.Repository
	utils      utils.IUtils
	random     Randomizer
	now        func() time.Time
	handlers   map[intent.Intent]intentHandler
}

type Option func(*chatbotService)

// WithRandomizer pins the random source used to pick greetings.
func WithRandomizer(r Randomizer) Option {
	return func(s *chatbotService) {
		s.random = r
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *chatbotService) {
		s.now = now
	}
}

func WithTaxonomy(taxonomy intent.Taxonomy) Option {
	return func(s *chatbotService) {
		s.taxonomy = taxonomy
	}
}

func NewChatbotService(
	log *logrus.Logger,
	cfg Config,
	store conversation.Store,
	engine search.IEngine,
	orderRepo orderRepository.Repository,
	utils utils.IUtils,
	opts ...Option,
) IChatbotService {
	s := &chatbotService{
		log:       log,
		cfg:       cfg,
		taxonomy:  intent.DefaultTaxonomy(),
		store:     store,
		locks:     conversation.NewKeyedMutex(),
		engine:    engine,
		orderRepo: orderRepo,
		utils:     utils,
		random:    NewRandomizer(time.Now().UnixNano()),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.strategies = []intent.Classifier{
		intent.New(intent.StrategyBayes, s.taxonomy),
		intent.New(intent.StrategyPattern, s.taxonomy),
	}
	s.classifier = s.strategies[0]
	for _, c := range s.strategies {
		if c.Name() == cfg.Classifier {
			s.classifier = c
		}
	}
	s.handlers = s.registerHandlers()

	log.WithFields(logrus.Fields{
		"classifier":      s.classifier.Name(),
		"order_id_scheme": cfg.OrderIDScheme,
	}).Info("Chatbot service initialised")

	return s
}
