package chatbotHandler

import (
	"GlamoraBackend/internal/api/chatbot"
	contextPkg "GlamoraBackend/pkg/context"
	"GlamoraBackend/pkg/handlerUtil"
	"GlamoraBackend/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const requestTimeout = 10 * time.Second

func (h *ChatbotHandler) Chat(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req chatbot.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"session_id": req.SessionID,
		"path":       ctx.Path(),
	}).Debug("Processing chat request")

	resp, err := h.chatbotService.Chat(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "chat")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}

func (h *ChatbotHandler) Classify(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req chatbot.ClassifyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.chatbotService.Classify(c, req))
}

func (h *ChatbotHandler) GetIntents(ctx *fiber.Ctx) error {
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	return handlerUtil.New(h.log).HandleSuccess(ctx, fiber.StatusOK, h.chatbotService.Intents(c))
}
