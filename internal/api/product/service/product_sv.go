package productService

import (
	"GlamoraBackend/internal/api/product"
	"GlamoraBackend/internal/entity"
	contextPkg "GlamoraBackend/pkg/context"
	"GlamoraBackend/pkg/nlp"
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

func (s *productService) GetProductByID(ctx context.Context, id string) (entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.productRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Product{}, err
	}

	p, err := repo.Products.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Product not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get product")
		}
		return entity.Product{}, err
	}

	return p, nil
}

func (s *productService) ListProducts(ctx context.Context, query product.ListProductsQuery) (*product.ProductListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	page, limit := query.Page, query.Limit
	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	repo, err := s.productRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	total, err := repo.Products.CountProducts(ctx, query.Category)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to count products")
		return nil, product.ErrListProducts
	}

	list, err := repo.Products.ListProducts(ctx, entity.ProductFilter{
		Category: query.Category,
		Sort:     entity.ParseProductSort(query.Sort),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list products")
		return nil, product.ErrListProducts
	}

	return &product.ProductListResponse{
		Products: product.NewProductResponses(list),
		Total:    total,
	}, nil
}

// SearchProducts rejects queries made only of stop words; they can never match.
func (s *productService) SearchProducts(ctx context.Context, query string) ([]product.ProductResponse, error) {
	if len(nlp.Keywords(query)) == 0 {
		return nil, product.ErrInvalidQuery
	}

	list, err := s.engine.Search(ctx, query)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"query":      query,
			"error":      err.Error(),
		}).Error("Failed to search products")
		return nil, product.ErrSearchProducts
	}

	return product.NewProductResponses(list), nil
}

func (s *productService) RecommendProducts(ctx context.Context, query string) (*product.RecommendationResponse, error) {
	rec, err := s.engine.Recommend(ctx, query, nil)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"query":      query,
			"error":      err.Error(),
		}).Error("Failed to recommend products")
		return nil, product.ErrSearchProducts
	}

	return &product.RecommendationResponse{
		Products:     product.NewProductResponses(rec.Products),
		Personalized: rec.Personalized,
		Strategy:     rec.Bucket,
	}, nil
}
