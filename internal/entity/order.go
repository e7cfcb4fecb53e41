package entity

import "time"

type OrderStatus string

const (
	OrderStatusPendingDelivery OrderStatus = "pending delivery"
	OrderStatusPaymentPending  OrderStatus = "payment pending"
	OrderStatusDelivered       OrderStatus = "delivered"
	OrderStatusCanceled        OrderStatus = "canceled"
)

type Order struct {
	ID              string      `json:"id"`
	OrderID         string      `json:"order_id"`
	UserID          string      `json:"user_id"`
	Status          OrderStatus `json:"status"`
	Items           []OrderItem `json:"items"`
	TotalPrice      float64     `json:"total_price"`
	DiscountApplied float64     `json:"discount_applied"`
	FinalPrice      float64     `json:"final_price"`
	Payment         *Payment    `json:"payment,omitempty"`
	Shipping        *Shipping   `json:"shipping,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Payment struct {
	Method        string `json:"method"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id,omitempty"`
}

type Shipping struct {
	FullName     string    `json:"full_name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	PostalCode   string    `json:"postal_code"`
	DeliveryDate time.Time `json:"delivery_date"`
}

// ItemCount sums the quantities of all order lines.
func (o Order) ItemCount() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}
