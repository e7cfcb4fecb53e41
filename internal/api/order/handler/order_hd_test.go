package orderHandler

import (
	"GlamoraBackend/internal/api/order"
	"GlamoraBackend/internal/entity"
	jwtPkg "GlamoraBackend/pkg/jwt"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenMiddleware stands in for the JWT guard: any bearer header authenticates.
type tokenMiddleware struct{}

func (tokenMiddleware) NewRateLimiter(ctx *fiber.Ctx) error { return ctx.Next() }

func (tokenMiddleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	if ctx.Get(fiber.HeaderAuthorization) == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	ctx.Locals(jwtPkg.UserLocalsKey, entity.UserLoginData{ID: "op-1"})
	return ctx.Next()
}

func (tokenMiddleware) NewRequestIDMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error { return ctx.Next() }
}
func (tokenMiddleware) NewLoggingMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error { return ctx.Next() }
}
func (tokenMiddleware) GetRequestID(*fiber.Ctx) string { return "req-test" }

type fakeService struct {
	err     error
	seenTop *int
}

func (f fakeService) GetAnalytics(_ context.Context, top int) (*order.AnalyticsResponse, error) {
	if f.seenTop != nil {
		*f.seenTop = top
	}
	if f.err != nil {
		return nil, f.err
	}
	resp := order.NewAnalyticsResponse(
		[]entity.StatusTotals{{Status: entity.OrderStatusDelivered, Orders: 2, Sales: 5000}},
		[]entity.TopProduct{{ID: "p-2", Name: "Glow Serum", TotalSales: 5000, ImageURLs: []string{}}},
	)
	return &resp, nil
}

func (f fakeService) GetOrderSummary(_ context.Context, orderID string) (*order.OrderSummaryResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &order.OrderSummaryResponse{OrderID: orderID, Status: "delivered", Items: []order.OrderItemResponse{}}, nil
}

func get(t *testing.T, svc fakeService, path string, authorized bool) (int, string) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	app := fiber.New()
	New(log, tokenMiddleware{}, svc).Start(app.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorized {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer token")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestGetOrder(t *testing.T) {
	status, body := get(t, fakeService{}, "/api/v1/orders/1042", true)

	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"order_id":"1042"`)
	assert.Contains(t, body, `"status":"delivered"`)
}

func TestGetOrderRequiresToken(t *testing.T) {
	status, _ := get(t, fakeService{}, "/api/v1/orders/1042", false)

	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestGetOrderErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		body   string
	}{
		{order.ErrOrderNotFound, fiber.StatusNotFound, "ORDER_NOT_FOUND"},
		{order.ErrInvalidOrderID, fiber.StatusBadRequest, "INVALID_ORDER_ID"},
		{errors.New("pq: too many connections"), fiber.StatusInternalServerError, `{"error":"Internal Server Error"}`},
	}

	for _, tt := range tests {
		status, body := get(t, fakeService{err: tt.err}, "/api/v1/orders/1042", true)
		assert.Equal(t, tt.status, status)
		assert.Contains(t, body, tt.body)
	}
}

func TestGetAnalytics(t *testing.T) {
	var top int
	status, body := get(t, fakeService{seenTop: &top}, "/api/v1/analytics?top=3", true)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 3, top)
	assert.Contains(t, body, `"sales_overview":{"total_sales":5000,"pending_delivery_sales":0,"delivered_sales":5000}`)
	assert.Contains(t, body, `"canceled":0`)
	assert.Contains(t, body, `"name":"Glow Serum"`)
}

func TestGetAnalyticsErrors(t *testing.T) {
	status, _ := get(t, fakeService{}, "/api/v1/analytics", false)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body := get(t, fakeService{}, "/api/v1/analytics?top=many", true)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "VALIDATION_ERROR")

	status, body = get(t, fakeService{err: order.ErrAnalytics}, "/api/v1/analytics", true)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, body)
}
