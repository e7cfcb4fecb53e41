package orderService

import (
	"GlamoraBackend/internal/api/order"
	orderRepository "GlamoraBackend/internal/api/order/repository"
	"context"

	"github.com/sirupsen/logrus"
)

type IOrderService interface {
	GetOrderSummary(ctx context.Context, orderID string) (*order.OrderSummaryResponse, error)
	GetAnalytics(ctx context.Context, top int) (*order.AnalyticsResponse, error)
}

type orderService struct {
	log       *logrus.Logger
	orderRepo orderRepository.Repository
}

func NewOrderService(log *logrus.Logger, orderRepo orderRepository.Repository) IOrderService {
	return &orderService{
		log:       log,
		orderRepo: orderRepo,
	}
}
