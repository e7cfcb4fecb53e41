package orderRepository

import (
	"GlamoraBackend/internal/api/order"
	"GlamoraBackend/internal/entity"
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderColumns = []string{
	"id", "order_id", "user_id", "status", "total_price", "discount_applied", "final_price", "created_at", "updated_at",
	"payment_method", "payment_status", "payment_transaction_id",
	"shipping_full_name", "shipping_address", "shipping_city", "shipping_country", "shipping_postal_code", "shipping_delivery_date",
}

func newTestClient(t *testing.T) (Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	client, err := New(sqlx.NewDb(db, "postgres"), log).NewClient(false)
	require.NoError(t, err)
	return client, mock
}

func TestGetOrderByOrderID(t *testing.T) {
	client, mock := newTestClient(t)
	created := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	delivery := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`WHERE o.order_id = \$1`).
		WithArgs("1042").
		WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(
			"row-1", "1042", "user-1", "pending delivery", 3000.0, 300.0, 2700.0, created, created,
			"mpesa", "paid", "TX-9",
			"Jane Doe", "12 Moi Avenue", "Nairobi", "Kenya", "00100", delivery,
		))
	mock.ExpectQuery(`FROM order_items`).
		WithArgs("row-1").
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "quantity", "price"}).
			AddRow("p-1", "Glow Serum", 2, 1000.0).
			AddRow("p-2", "Velvet Lipstick", 1, 1000.0))

	got, err := client.Orders.GetOrderByOrderID(context.Background(), "1042")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPendingDelivery, got.Status)
	assert.Equal(t, 3, got.ItemCount())
	require.NotNil(t, got.Payment)
	assert.Equal(t, "paid", got.Payment.Status)
	require.NotNil(t, got.Shipping)
	assert.Equal(t, delivery, got.Shipping.DeliveryDate)
	assert.Equal(t, "Nairobi", got.Shipping.City)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrderWithoutPaymentOrShipping(t *testing.T) {
	client, mock := newTestClient(t)
	now := time.Now()

	mock.ExpectQuery(`FROM orders o`).
		WithArgs("1043").
		WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(
			"row-2", "1043", "user-1", "payment pending", 500.0, 0.0, 500.0, now, now,
			nil, nil, nil,
			nil, nil, nil, nil, nil, nil,
		))
	mock.ExpectQuery(`FROM order_items`).
		WithArgs("row-2").
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "quantity", "price"}))

	got, err := client.Orders.GetOrderByOrderID(context.Background(), "1043")
	require.NoError(t, err)
	assert.Nil(t, got.Payment)
	assert.Nil(t, got.Shipping)
	assert.Empty(t, got.Items)
}

func TestGetOrderKeepsDeliveryDateWithoutAddress(t *testing.T) {
	client, mock := newTestClient(t)
	now := time.Now()
	delivery := time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM orders o`).
		WithArgs("1044").
		WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(
			"row-3", "1044", "user-2", "shipped", 900.0, 0.0, 900.0, now, now,
			nil, nil, nil,
			nil, nil, nil, nil, nil, delivery,
		))
	mock.ExpectQuery(`FROM order_items`).
		WithArgs("row-3").
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "quantity", "price"}))

	got, err := client.Orders.GetOrderByOrderID(context.Background(), "1044")
	require.NoError(t, err)
	require.NotNil(t, got.Shipping)
	assert.Equal(t, delivery, got.Shipping.DeliveryDate)
	assert.Empty(t, got.Shipping.Address)
}

func TestGetOrderNotFound(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery(`FROM orders o`).WithArgs("9999").WillReturnError(sql.ErrNoRows)

	_, err := client.Orders.GetOrderByOrderID(context.Background(), "9999")
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
