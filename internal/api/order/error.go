package order

import "GlamoraBackend/pkg/response"

var (
	ErrOrderNotFound  = response.NewError(404, "order not found")
	ErrInvalidOrderID = response.NewError(400, "invalid order id")
	ErrAnalytics      = response.NewError(500, "failed to compute analytics")
)
