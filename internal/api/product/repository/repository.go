package productRepository

import (
	"GlamoraBackend/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Products: &productsRepository{q: sqlExecutor, log: r.log},
		Reviews:  &reviewsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

// Products is the read side of the catalog store.
type Products interface {
	GetProductByID(ctx context.Context, id string) (entity.Product, error)
	FindProductsByPattern(ctx context.Context, pattern string, limit int) ([]entity.Product, error)
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)
	SearchProductsText(ctx context.Context, query string, limit int) ([]entity.Product, error)
	CountProducts(ctx context.Context, category string) (int, error)
}

// Reviews lists what shoppers wrote about a product, newest first.
type Reviews interface {
	ListReviews(ctx context.Context, productID string, limit int) ([]entity.Review, error)
}

type Client struct {
	Products Products
	Reviews  Reviews

	Commit   func() error
	Rollback func() error
}

type productsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type reviewsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
