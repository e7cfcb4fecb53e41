package search

import (
	"GlamoraBackend/internal/entity"
	"GlamoraBackend/pkg/cache"
	"context"

	"github.com/sirupsen/logrus"
)

const (
	DefaultThreshold = 0.7
	DefaultLimit     = 5
	DefaultPoolSize  = 500
)

// Catalog is the read-only product store the engine queries.
type Catalog interface {
	FindProductsByPattern(ctx context.Context, pattern string, limit int) ([]entity.Product, error)
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)
	SearchProductsText(ctx context.Context, query string, limit int) ([]entity.Product, error)
	CountProducts(ctx context.Context, category string) (int, error)
}

type IEngine interface {
	FindBest(ctx context.Context, query string) (entity.Product, bool, error)
	Search(ctx context.Context, query string) ([]entity.Product, error)
	Recommend(ctx context.Context, query string, preferences []string) (Recommendation, error)
	TopRatedInCategory(ctx context.Context, category string, limit int) ([]entity.Product, error)
}

type Recommendation struct {
	Products     []entity.Product `json:"products"`
	Personalized bool             `json:"personalized"`
	Bucket       string           `json:"bucket"`
}

type Engine struct {
	catalog   Catalog
	cache     cache.Cache
	log       *logrus.Logger
	threshold float64
	limit     int
	poolSize  int
}

type Option func(*Engine)

func WithThreshold(threshold float64) Option {
	return func(e *Engine) {
		e.threshold = threshold
	}
}

func WithLimit(limit int) Option {
	return func(e *Engine) {
		e.limit = limit
	}
}

// WithPoolSize caps how many catalog items are loaded for fuzzy ranking.
func WithPoolSize(size int) Option {
	return func(e *Engine) {
		e.poolSize = size
	}
}

func New(catalog Catalog, c cache.Cache, log *logrus.Logger, opts ...Option) *Engine {
	if c == nil {
		c = cache.NewNop()
	}

	e := &Engine{
		catalog:   catalog,
		cache:     c,
		log:       log,
		threshold: DefaultThreshold,
		limit:     DefaultLimit,
		poolSize:  DefaultPoolSize,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}
