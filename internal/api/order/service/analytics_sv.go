package orderService

import (
	"GlamoraBackend/internal/api/order"
	contextPkg "GlamoraBackend/pkg/context"
	"context"

	"github.com/sirupsen/logrus"
)

const (
	defaultTopProducts = 5
	maxTopProducts     = 50
)

func (s *orderService) GetAnalytics(ctx context.Context, top int) (*order.AnalyticsResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	switch {
	case top <= 0:
		top = defaultTopProducts
	case top > maxTopProducts:
		top = maxTopProducts
	}

	repo, err := s.orderRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	totals, err := repo.Analytics.SumOrdersByStatus(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sum orders by status")
		return nil, order.ErrAnalytics
	}

	products, err := repo.Analytics.TopProducts(ctx, top)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"top":        top,
			"error":      err.Error(),
		}).Error("Failed to rank top products")
		return nil, order.ErrAnalytics
	}

	resp := order.NewAnalyticsResponse(totals, products)
	return &resp, nil
}
