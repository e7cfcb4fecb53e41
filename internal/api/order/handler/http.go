package orderHandler

import (
	orderService "GlamoraBackend/internal/api/order/service"
	"GlamoraBackend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	log          *logrus.Logger
	middleware   middleware.Middleware
	orderService orderService.IOrderService
}

func New(log *logrus.Logger, middleware middleware.Middleware, svc orderService.IOrderService) *OrderHandler {
	return &OrderHandler{
		log:          log,
		middleware:   middleware,
		orderService: svc,
	}
}

func (h *OrderHandler) Start(srv fiber.Router) {
	orders := srv.Group("/orders")

	orders.Get("/:orderId", h.middleware.NewTokenMiddleware, h.GetOrder)

	srv.Get("/analytics", h.middleware.NewTokenMiddleware, h.GetAnalytics)
}
