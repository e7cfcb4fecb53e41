package productService

import (
	productRepository "GlamoraBackend/internal/api/product/repository"
	"GlamoraBackend/internal/entity"
	contextPkg "GlamoraBackend/pkg/context"
	"GlamoraBackend/pkg/search"
	"context"

	"github.com/sirupsen/logrus"
)

type catalog struct {
	log         *logrus.Logger
	productRepo productRepository.Repository
}

// NewCatalog exposes the product repository as the search engine's catalog.
func NewCatalog(log *logrus.Logger, productRepo productRepository.Repository) search.Catalog {
	return &catalog{
		log:         log,
		productRepo: productRepo,
	}
}

func (c *catalog) client(ctx context.Context) (productRepository.Client, error) {
	repo, err := c.productRepo.NewClient(false)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return productRepository.Client{}, err
	}
	return repo, nil
}

func (c *catalog) FindProductsByPattern(ctx context.Context, pattern string, limit int) ([]entity.Product, error) {
	repo, err := c.client(ctx)
	if err != nil {
		return nil, err
	}

	return repo.Products.FindProductsByPattern(ctx, pattern, limit)
}

func (c *catalog) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	repo, err := c.client(ctx)
	if err != nil {
		return nil, err
	}
	return repo.Products.ListProducts(ctx, filter)
}

func (c *catalog) SearchProductsText(ctx context.Context, query string, limit int) ([]entity.Product, error) {
	repo, err := c.client(ctx)
	if err != nil {
		return nil, err
	}
	return repo.Products.SearchProductsText(ctx, query, limit)
}

func (c *catalog) CountProducts(ctx context.Context, category string) (int, error) {
	repo, err := c.client(ctx)
	if err != nil {
		return 0, err
	}
	return repo.Products.CountProducts(ctx, category)
}
