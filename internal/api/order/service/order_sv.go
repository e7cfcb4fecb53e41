package orderService

import (
	"GlamoraBackend/internal/api/order"
	contextPkg "GlamoraBackend/pkg/context"
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var numericOrderID = regexp.MustCompile(`^\d{1,18}$`)

// ValidOrderID accepts the two order id schemes the store knows: UUIDs and
// plain numbers.
func ValidOrderID(orderID string) bool {
	if numericOrderID.MatchString(orderID) {
		return true
	}
	_, err := uuid.Parse(orderID)
	return err == nil && len(orderID) == 36
}

func (s *orderService) GetOrderSummary(ctx context.Context, orderID string) (*order.OrderSummaryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	orderID = strings.TrimSpace(orderID)
	if !ValidOrderID(orderID) {
		return nil, order.ErrInvalidOrderID
	}

	repo, err := s.orderRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	o, err := repo.Orders.GetOrderByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"order_id":   orderID,
			}).Warn("Order not found")
			return nil, err
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"order_id":   orderID,
			"error":      err.Error(),
		}).Error("Failed to get order")
		return nil, err
	}

	resp := order.NewOrderSummaryResponse(o)
	return &resp, nil
}
