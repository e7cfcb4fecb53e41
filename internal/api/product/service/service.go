package productService

import (
	"GlamoraBackend/internal/api/product"
	productRepository "GlamoraBackend/internal/api/product/repository"
	"GlamoraBackend/internal/entity"
	"GlamoraBackend/pkg/search"
	"context"

	"github.com/sirupsen/logrus"
)

type IProductService interface {
	GetProductByID(ctx context.Context, id string) (entity.Product, error)
	ListProducts(ctx context.Context, query product.ListProductsQuery) (*product.ProductListResponse, error)
	SearchProducts(ctx context.Context, query string) ([]product.ProductResponse, error)
	RecommendProducts(ctx context.Context, query string) (*product.RecommendationResponse, error)
	GetProductReviews(ctx context.Context, id string) (*product.ReviewListResponse, error)
}

type productService struct {
	log         *logrus.Logger
	productRepo productRepository.Repository
	engine      search.IEngine
}

func NewProductService(
	log *logrus.Logger,
	productRepo productRepository.Repository,
	engine search.IEngine,
) IProductService {
	return &productService{
		log:         log,
		productRepo: productRepo,
		engine:      engine,
	}
}
