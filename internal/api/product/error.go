package product

import "GlamoraBackend/pkg/response"

var (
	ErrProductNotFound = response.NewError(404, "product not found")
	ErrInvalidQuery    = response.NewError(400, "invalid search query")
	ErrListProducts    = response.NewError(500, "failed to list products")
	ErrSearchProducts  = response.NewError(500, "failed to search products")
	ErrListReviews     = response.NewError(500, "failed to list reviews")
)
