package productHandler

import (
	productService "GlamoraBackend/internal/api/product/service"
	"GlamoraBackend/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	productService productService.IProductService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ps productService.IProductService,
) *ProductHandler {
	return &ProductHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		productService: ps,
	}
}

func (h *ProductHandler) Start(srv fiber.Router) {
	products := srv.Group("/products")

	products.Get("", h.ListProducts)
	products.Get("/search", h.SearchProducts)
	products.Get("/recommendations", h.RecommendProducts)
	products.Get("/:id/reviews", h.GetProductReviews)
	products.Get("/:id", h.GetProductByID)
}
