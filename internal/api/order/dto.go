package order

import (
	"GlamoraBackend/internal/entity"
	"strings"
	"time"
)

type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderSummaryResponse struct {
	OrderID         string              `json:"order_id"`
	Status          string              `json:"status"`
	Items           []OrderItemResponse `json:"items"`
	TotalPrice      float64             `json:"total_price"`
	DiscountApplied float64             `json:"discount_applied"`
	FinalPrice      float64             `json:"final_price"`
	PaymentMethod   string              `json:"payment_method,omitempty"`
	PaymentStatus   string              `json:"payment_status,omitempty"`
	DeliveryDate    *time.Time          `json:"delivery_date,omitempty"`
	ShippingAddress string              `json:"shipping_address,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

func NewOrderSummaryResponse(o entity.Order) OrderSummaryResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	resp := OrderSummaryResponse{
		OrderID:         o.OrderID,
		Status:          string(o.Status),
		Items:           items,
		TotalPrice:      o.TotalPrice,
		DiscountApplied: o.DiscountApplied,
		FinalPrice:      o.FinalPrice,
		CreatedAt:       o.CreatedAt,
	}

	if o.Payment != nil {
		resp.PaymentMethod = o.Payment.Method
		resp.PaymentStatus = o.Payment.Status
	}

	if o.Shipping != nil {
		if !o.Shipping.DeliveryDate.IsZero() {
			date := o.Shipping.DeliveryDate
			resp.DeliveryDate = &date
		}
		parts := make([]string, 0, 4)
		for _, p := range []string{o.Shipping.Address, o.Shipping.City, o.Shipping.PostalCode, o.Shipping.Country} {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		resp.ShippingAddress = strings.Join(parts, ", ")
	}

	return resp
}

type AnalyticsQuery struct {
	Top int `query:"top"`
}

type SalesOverview struct {
	TotalSales           float64 `json:"total_sales"`
	PendingDeliverySales float64 `json:"pending_delivery_sales"`
	DeliveredSales       float64 `json:"delivered_sales"`
}

type AnalyticsResponse struct {
	SalesOverview    SalesOverview       `json:"sales_overview"`
	OrderStatusCount map[string]int      `json:"order_status_count"`
	TopProducts      []entity.TopProduct `json:"top_products"`
}

// NewAnalyticsResponse counts revenue only from orders that are delivered or
// on their way. Statuses without orders report zero.
func NewAnalyticsResponse(totals []entity.StatusTotals, top []entity.TopProduct) AnalyticsResponse {
	resp := AnalyticsResponse{
		OrderStatusCount: make(map[string]int, len(entity.OrderStatuses)),
		TopProducts:      top,
	}
	for _, status := range entity.OrderStatuses {
		resp.OrderStatusCount[string(status)] = 0
	}

	for _, t := range totals {
		if _, ok := resp.OrderStatusCount[string(t.Status)]; ok {
			resp.OrderStatusCount[string(t.Status)] += t.Orders
		}
		switch t.Status {
		case entity.OrderStatusDelivered:
			resp.SalesOverview.DeliveredSales += t.Sales
		case entity.OrderStatusPendingDelivery:
			resp.SalesOverview.PendingDeliverySales += t.Sales
		}
	}
	resp.SalesOverview.TotalSales = resp.SalesOverview.DeliveredSales + resp.SalesOverview.PendingDeliverySales

	if resp.TopProducts == nil {
		resp.TopProducts = []entity.TopProduct{}
	}
	return resp
}
