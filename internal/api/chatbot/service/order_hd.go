package chatbotService

import (
	"GlamoraBackend/internal/api/order"
	"GlamoraBackend/internal/entity"
	contextPkg "GlamoraBackend/pkg/context"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	uuidOrderIDRe    = regexp.MustCompile(`(?i)\b[a-f0-9]{8}-(?:[a-f0-9]{4}-){3}[a-f0-9]{12}\b`)
	numericOrderIDRe = regexp.MustCompile(`(?i)\border\s*(?:id|number|no\.?)?\s*#?\s*(\d+)\b`)
)

// extractOrderID finds an order identifier in input using the configured
// scheme: a UUID anywhere in the text, or "order <digits>".
func (s *chatbotService) extractOrderID(input string) (string, bool) {
	if s.cfg.OrderIDScheme == OrderIDSchemeNumeric {
		m := numericOrderIDRe.FindStringSubmatch(input)
		if m == nil {
			return "", false
		}
		return m[1], true
	}

	candidate := uuidOrderIDRe.FindString(input)
	if candidate == "" {
		return "", false
	}
	if _, err := uuid.Parse(candidate); err != nil {
		return "", false
	}
	return candidate, true
}

func (s *chatbotService) orderStatus(ctx context.Context, t turn) (reply, error) {
	orderID, ok := s.extractOrderID(t.input)
	if !ok {
		example := "e345cd64-1537-465a-a171-277bee7856cf"
		if s.cfg.OrderIDScheme == OrderIDSchemeNumeric {
			example = "order 1042"
		}
		return reply{text: "I couldn't find any order details. Please provide your order ID in the correct format, for example " + example + "."}, nil
	}

	repo, err := s.orderRepo.NewClient(false)
	if err != nil {
		return reply{}, err
	}

	o, err := repo.Orders.GetOrderByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"order_id":   orderID,
			}).Info("Chat order lookup found nothing")
			return reply{text: fmt.Sprintf("No order found with the ID %s. Please double-check it and try again.", orderID)}, nil
		}
		return reply{}, err
	}

	return reply{text: s.orderSummary(orderID, o)}, nil
}

func (s *chatbotService) orderSummary(orderID string, o entity.Order) string {
	items := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		name := item.Name
		if name == "" {
			name = item.ProductID
		}
		items = append(items, fmt.Sprintf("%d x %s", item.Quantity, name))
	}
	itemList := "none"
	if len(items) > 0 {
		itemList = strings.Join(items, ", ")
	}

	paymentStatus := "N/A"
	if o.Payment != nil && o.Payment.Status != "" {
		paymentStatus = o.Payment.Status
	}

	deliveryDate := "not scheduled yet"
	shipping := "Shipping details not available"
	if o.Shipping != nil {
		if !o.Shipping.DeliveryDate.IsZero() {
			deliveryDate = o.Shipping.DeliveryDate.Format("2 Jan 2006")
		}
		if parts := nonEmpty(o.Shipping.FullName, o.Shipping.City, o.Shipping.Country); len(parts) > 0 {
			shipping = strings.Join(parts, ", ")
		}
	}

	lines := []string{
		fmt.Sprintf("Your order with ID %s is currently %s.", orderID, o.Status),
		fmt.Sprintf("Items (%d): %s.", o.ItemCount(), itemList),
		fmt.Sprintf("Total Price: %s.", s.price(o.TotalPrice)),
		fmt.Sprintf("Discount Applied: %s.", s.price(o.DiscountApplied)),
		fmt.Sprintf("Final Price (after discounts): %s.", s.price(o.FinalPrice)),
		fmt.Sprintf("Payment Status: %s.", paymentStatus),
		fmt.Sprintf("Delivery Date: %s.", deliveryDate),
		fmt.Sprintf("Shipping: %s.", shipping),
	}

	return strings.Join(lines, "\n")
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
