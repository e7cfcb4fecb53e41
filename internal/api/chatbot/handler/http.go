package chatbotHandler

import (
	chatbotService "GlamoraBackend/internal/api/chatbot/service"
	"GlamoraBackend/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ChatbotHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	chatbotService chatbotService.IChatbotService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatbotService.IChatbotService,
) *ChatbotHandler {
	return &ChatbotHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		chatbotService: cs,
	}
}

func (h *ChatbotHandler) Start(srv fiber.Router) {
	chatbot := srv.Group("/chatbot")

	chatbot.Post("", h.middleware.NewRateLimiter, h.Chat)
	chatbot.Post("/classify", h.middleware.NewRateLimiter, h.Classify)
	chatbot.Get("/intents", h.GetIntents)

	chatbot.Use("/ws", h.upgradeOnly)
	chatbot.Get("/ws", websocket.New(h.handleWebSocket))

	// Session inspection is for operators only
	chatbot.Get("/sessions/:id", h.middleware.NewTokenMiddleware, h.GetSession)
	chatbot.Delete("/sessions/:id", h.middleware.NewTokenMiddleware, h.ResetSession)
}
