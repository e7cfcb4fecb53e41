package orderRepository

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
		Orders:    &ordersRepository{q: sqlExecutor, log: r.log},
		Analytics: &analyticsRepository{q: sqlExecutor, log: r.log},
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Orders interface {
	GetOrderByOrderID(ctx context.Context, orderID string) (entity.Order, error)
}

// Analytics aggregates over every order in the store.
type Analytics interface {
	SumOrdersByStatus(ctx context.Context) ([]entity.StatusTotals, error)
	TopProducts(ctx context.Context, limit int) ([]entity.TopProduct, error)
}

type Client struct {
	Orders    Orders
	Analytics Analytics

	Commit   func() error
	Rollback func() error
}

type ordersRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type analyticsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
