package productService

import (
	"GlamoraBackend/internal/api/product"
	contextPkg "GlamoraBackend/pkg/context"
	"context"

	"github.com/sirupsen/logrus"
)

const reviewLimit = 50

// GetProductReviews fails with ErrProductNotFound for an unknown product
// instead of answering with an empty list.
func (s *productService) GetProductReviews(ctx context.Context, id string) (*product.ReviewListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if _, err := s.GetProductByID(ctx, id); err != nil {
		return nil, err
	}

	repo, err := s.productRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	reviews, err := repo.Reviews.ListReviews(ctx, id, reviewLimit)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to list reviews")
		return nil, product.ErrListReviews
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         id,
		"count":      len(reviews),
	}).Debug("Listed product reviews")

	return product.NewReviewListResponse(id, reviews), nil
}
