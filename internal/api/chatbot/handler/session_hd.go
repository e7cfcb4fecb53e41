package chatbotHandler

import (
	contextPkg "GlamoraBackend/pkg/context"
	"GlamoraBackend/pkg/handlerUtil"
	"GlamoraBackend/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ChatbotHandler) GetSession(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sessionID := ctx.Params("id")

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"session_id": sessionID,
	}).Debug("Processing get session request")

	session, err := h.chatbotService.GetSession(c, sessionID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_session")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, session)
	}
}

func (h *ChatbotHandler) ResetSession(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	sessionID := ctx.Params("id")

	if err := h.chatbotService.ResetSession(c, sessionID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "reset_session")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"session_id": sessionID,
	}).Info("Session reset")

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusNoContent, nil)
	}
}
