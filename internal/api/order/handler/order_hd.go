package orderHandler

import (
	"GlamoraBackend/internal/api/order"
	contextPkg "GlamoraBackend/pkg/context"
	"GlamoraBackend/pkg/handlerUtil"
	jwtPkg "GlamoraBackend/pkg/jwt"
	"GlamoraBackend/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *OrderHandler) GetOrder(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	orderID := ctx.Params("orderId")

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"order_id":   orderID,
		"user_id":    userData.ID,
	}).Debug("Processing get order request")

	resp, err := h.orderService.GetOrderSummary(c, orderID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_order")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}

func (h *OrderHandler) GetAnalytics(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if _, err := jwtPkg.GetUserLoginData(ctx); err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var query order.AnalyticsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	resp, err := h.orderService.GetAnalytics(c, query.Top)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_analytics")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}
