package orderRepository

import (
	"GlamoraBackend/internal/entity"
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumOrdersByStatus(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery(`COUNT\(\*\) AS orders,\s+COALESCE\(SUM\(final_price\), 0\) AS sales\s+FROM orders\s+GROUP BY status`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "orders", "sales"}).
			AddRow("delivered", 3, 7500.0).
			AddRow("pending delivery", 2, 2700.0).
			AddRow("canceled", 1, 0.0))

	got, err := client.Analytics.SumOrdersByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.StatusTotals{
		{Status: entity.OrderStatusDelivered, Orders: 3, Sales: 7500},
		{Status: entity.OrderStatusPendingDelivery, Orders: 2, Sales: 2700},
		{Status: entity.OrderStatusCanceled, Orders: 1, Sales: 0},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSumOrdersByStatusError(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery(`FROM orders`).WillReturnError(errors.New("connection reset"))

	_, err := client.Analytics.SumOrdersByStatus(context.Background())
	assert.Error(t, err)
}

func TestTopProducts(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery(`GROUP BY pr.id, pr.name, pr.image_urls\s+ORDER BY total_sales DESC, pr.name ASC\s+LIMIT \$1`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image_urls", "total_sales"}).
			AddRow("p-2", "Glow Serum", "{https://cdn/g.png}", 7500.0).
			AddRow("p-1", "Matte Lipstick", nil, 1600.0))

	got, err := client.Analytics.TopProducts(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, entity.TopProduct{ID: "p-2", Name: "Glow Serum", TotalSales: 7500, ImageURLs: []string{"https://cdn/g.png"}}, got[0])
	assert.Equal(t, []string{}, got[1].ImageURLs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopProductsError(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery(`FROM order_items`).WithArgs(5).WillReturnError(errors.New("connection reset"))

	_, err := client.Analytics.TopProducts(context.Background(), 5)
	assert.Error(t, err)
}
