package entity

// StatusTotals is one row of the per-status rollup over orders.
type StatusTotals struct {
	Status OrderStatus
	Orders int
	Sales  float64
}

type TopProduct struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	TotalSales float64  `json:"total_sales"`
	ImageURLs  []string `json:"image_urls"`
}

// OrderStatuses lists every status a dashboard reports on, even with no orders.
var OrderStatuses = []OrderStatus{
	OrderStatusPendingDelivery,
	OrderStatusPaymentPending,
	OrderStatusDelivered,
	OrderStatusCanceled,
}
