package orderRepository

import (
	"GlamoraBackend/internal/entity"
	contextPkg "GlamoraBackend/pkg/context"
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type StatusTotalsDB struct {
	Status sql.NullString  `db:"status"`
	Orders sql.NullInt64   `db:"orders"`
	Sales  sql.NullFloat64 `db:"sales"`
}

type TopProductDB struct {
	ID         sql.NullString  `db:"id"`
	Name       sql.NullString  `db:"name"`
	ImageURLs  pq.StringArray  `db:"image_urls"`
	TotalSales sql.NullFloat64 `db:"total_sales"`
}

func (r *analyticsRepository) SumOrdersByStatus(ctx context.Context) ([]entity.StatusTotals, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var rows []StatusTotalsDB
	if err := r.q.SelectContext(ctx, &rows, querySumOrdersByStatus); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumOrdersByStatus execution err")
		return nil, err
	}

	totals := make([]entity.StatusTotals, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, entity.StatusTotals{
			Status: entity.OrderStatus(row.Status.String),
			Orders: int(row.Orders.Int64),
			Sales:  row.Sales.Float64,
		})
	}

	return totals, nil
}

func (r *analyticsRepository) TopProducts(ctx context.Context, limit int) ([]entity.TopProduct, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryTopProducts, map[string]interface{}{
		"limit": limit,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("TopProducts named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []TopProductDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"limit":      limit,
			"error":      err.Error(),
		}).Error("TopProducts execution err")
		return nil, err
	}

	products := make([]entity.TopProduct, 0, len(rows))
	for _, row := range rows {
		imageURLs := []string(row.ImageURLs)
		if imageURLs == nil {
			imageURLs = []string{}
		}
		products = append(products, entity.TopProduct{
			ID:         row.ID.String,
			Name:       row.Name.String,
			TotalSales: row.TotalSales.Float64,
			ImageURLs:  imageURLs,
		})
	}

	return products, nil
}
