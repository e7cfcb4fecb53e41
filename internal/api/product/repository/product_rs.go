package productRepository

import (
	"GlamoraBackend/internal/api/product"
	"GlamoraBackend/internal/entity"
	contextPkg "GlamoraBackend/pkg/context"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const defaultListLimit = 10

type ProductDB struct {
	ID          sql.NullString  `db:"id"`
	Name        sql.NullString  `db:"name"`
	Description sql.NullString  `db:"description"`
	Category    sql.NullString  `db:"category"`
	Price       sql.NullFloat64 `db:"price"`
	Rating      sql.NullFloat64 `db:"rating"`
	Discount    sql.NullFloat64 `db:"discount"`
	ImageURLs   pq.StringArray  `db:"image_urls"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

type rankedProductDB struct {
	ProductDB
	Score sql.NullFloat64 `db:"score"`
}

func (r *productsRepository) GetProductByID(ctx context.Context, id string) (entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryGetProductByID, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetProductByID named query preparation err")
		return entity.Product{}, err
	}
	query = r.q.Rebind(query)

	var row ProductDB
	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"product_id": id,
			}).Warn("GetProductByID no rows found")
			return entity.Product{}, product.ErrProductNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetProductByID execution err")
		return entity.Product{}, err
	}

	return r.makeProduct(row), nil
}

// FindProductsByPattern returns up to limit products whose name, description
// or category matches the case-insensitive POSIX pattern. Name hits come
// first, then the best rated.
func (r *productsRepository) FindProductsByPattern(ctx context.Context, pattern string, limit int) ([]entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if limit <= 0 {
		limit = defaultListLimit
	}

	query, args, err := sqlx.Named(queryFindProductsByPattern, map[string]interface{}{
		"pattern": pattern,
		"limit":   limit,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindProductsByPattern named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []ProductDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"pattern":    pattern,
			"error":      err.Error(),
		}).Error("FindProductsByPattern execution err")
		return nil, err
	}

	products := make([]entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, r.makeProduct(row))
	}

	return products, nil
}

func (r *productsRepository) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)

	orderBy, ok := productOrderBy[filter.Sort.String()]
	if !ok {
		orderBy = productOrderBy[entity.ProductSortRatingDesc.String()]
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query, args, err := sqlx.Named(fmt.Sprintf(queryListProducts, orderBy), map[string]interface{}{
		"category":            filter.Category,
		"description_pattern": filter.DescriptionPattern,
		"limit":               limit,
		"offset":              filter.Offset,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListProducts named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []ProductDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"sort":       filter.Sort.String(),
			"error":      err.Error(),
		}).Error("ListProducts execution err")
		return nil, err
	}

	products := make([]entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, r.makeProduct(row))
	}

	return products, nil
}

func (r *productsRepository) SearchProductsText(ctx context.Context, text string, limit int) ([]entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if limit <= 0 {
		limit = defaultListLimit
	}

	query, args, err := sqlx.Named(querySearchProductsText, map[string]interface{}{
		"query": text,
		"limit": limit,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchProductsText named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []rankedProductDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchProductsText execution err")
		return nil, err
	}

	products := make([]entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, r.makeProduct(row.ProductDB))
	}

	return products, nil
}

func (r *productsRepository) CountProducts(ctx context.Context, category string) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryCountProducts, map[string]interface{}{
		"category": category,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountProducts named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	var total int
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountProducts execution err")
		return 0, err
	}

	return total, nil
}

func (r *productsRepository) makeProduct(row ProductDB) entity.Product {
	imageURLs := []string(row.ImageURLs)
	if imageURLs == nil {
		imageURLs = []string{}
	}

	return entity.Product{
		ID:          row.ID.String,
		Name:        row.Name.String,
		Description: row.Description.String,
		Category:    row.Category.String,
		Price:       row.Price.Float64,
		Rating:      row.Rating.Float64,
		Discount:    row.Discount.Float64,
		ImageURLs:   imageURLs,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
