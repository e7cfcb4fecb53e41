package orderService

import (
	"GlamoraBackend/internal/api/order"
	orderRepository "GlamoraBackend/internal/api/order/repository"
	"GlamoraBackend/internal/entity"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrders struct {
	orders map[string]entity.Order
	err    error
	calls  int
}

func (f *fakeOrders) GetOrderByOrderID(_ context.Context, orderID string) (entity.Order, error) {
	f.calls++
	if f.err != nil {
		return entity.Order{}, f.err
	}
	o, ok := f.orders[orderID]
	if !ok {
		return entity.Order{}, order.ErrOrderNotFound
	}
	return o, nil
}

type fakeRepo struct {
	orders    *fakeOrders
	analytics *fakeAnalytics
	err       error
}

func (r fakeRepo) NewClient(bool) (orderRepository.Client, error) {
	if r.err != nil {
		return orderRepository.Client{}, r.err
	}
	return orderRepository.Client{
		Orders:    r.orders,
		Analytics: r.analytics,
		Commit:    func() error { return nil },
		Rollback:  func() error { return nil },
	}, nil
}

func newService(orders *fakeOrders) IOrderService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewOrderService(log, fakeRepo{orders: orders})
}

const orderID = "e345cd64-1537-465a-a171-277bee7856cf"

func TestValidOrderID(t *testing.T) {
	assert.True(t, ValidOrderID(orderID))
	assert.True(t, ValidOrderID("1042"))
	assert.False(t, ValidOrderID(""))
	assert.False(t, ValidOrderID("e345cd641537465aa171277bee7856cf"))
	assert.False(t, ValidOrderID("order-1042"))
}

func TestGetOrderSummary(t *testing.T) {
	delivery := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	orders := &fakeOrders{orders: map[string]entity.Order{
		orderID: {
			OrderID:         orderID,
			Status:          entity.OrderStatusDelivered,
			Items:           []entity.OrderItem{{ProductID: "p-1", Name: "Glow Serum", Quantity: 2, Price: 1250}},
			TotalPrice:      2500,
			DiscountApplied: 250,
			FinalPrice:      2250,
			Payment:         &entity.Payment{Method: "card", Status: "paid"},
			Shipping:        &entity.Shipping{Address: "12 Moi Ave", City: "Nairobi", Country: "Kenya", DeliveryDate: delivery},
		},
	}}

	resp, err := newService(orders).GetOrderSummary(context.Background(), " "+orderID+" ")
	require.NoError(t, err)

	assert.Equal(t, "delivered", resp.Status)
	assert.Equal(t, []order.OrderItemResponse{{ProductID: "p-1", Name: "Glow Serum", Quantity: 2, Price: 1250}}, resp.Items)
	assert.Equal(t, 2250.0, resp.FinalPrice)
	assert.Equal(t, "card", resp.PaymentMethod)
	assert.Equal(t, "paid", resp.PaymentStatus)
	require.NotNil(t, resp.DeliveryDate)
	assert.True(t, delivery.Equal(*resp.DeliveryDate))
	assert.Equal(t, "12 Moi Ave, Nairobi, Kenya", resp.ShippingAddress)
}

func TestGetOrderSummaryErrors(t *testing.T) {
	orders := &fakeOrders{orders: map[string]entity.Order{}}
	svc := newService(orders)

	_, err := svc.GetOrderSummary(context.Background(), "not-an-id")
	assert.ErrorIs(t, err, order.ErrInvalidOrderID)
	assert.Zero(t, orders.calls)

	_, err = svc.GetOrderSummary(context.Background(), orderID)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)

	orders.err = errors.New("connection refused")
	_, err = svc.GetOrderSummary(context.Background(), "1042")
	assert.EqualError(t, err, "connection refused")
}

func TestGetOrderSummaryClientError(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := NewOrderService(log, fakeRepo{err: errors.New("pool exhausted")})

	_, err := svc.GetOrderSummary(context.Background(), orderID)
	assert.EqualError(t, err, "pool exhausted")
}
