package product

import (
	"GlamoraBackend/internal/entity"
	"math"
	"time"
)

type ListProductsQuery struct {
	Category string `query:"category" validate:"omitempty,max=64"`
	Sort     string `query:"sort" validate:"omitempty,oneof=rating price_asc price_desc value newest name"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

type SearchQuery struct {
	Query string `query:"q" validate:"required,min=1,max=200"`
}

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Rating      float64   `json:"rating"`
	Discount    float64   `json:"discount"`
	ImageURLs   []string  `json:"image_urls"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

type RecommendationResponse struct {
	Products     []ProductResponse `json:"products"`
	Personalized bool              `json:"personalized"`
	Strategy     string            `json:"strategy"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Rating    float64   `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	ProductID     string           `json:"product_id"`
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"average_rating"`
}

func NewReviewListResponse(productID string, reviews []entity.Review) *ReviewListResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewResponse{
			ID:        r.ID,
			UserName:  r.UserName,
			Rating:    r.Rating,
			Text:      r.Text,
			CreatedAt: r.CreatedAt,
		})
	}
	return &ReviewListResponse{
		ProductID:     productID,
		Reviews:       out,
		AverageRating: math.Round(entity.AverageRating(reviews)*100) / 100,
	}
}

func NewProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Rating:      p.Rating,
		Discount:    p.Discount,
		ImageURLs:   p.ImageURLs,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewProductResponses(list []entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, NewProductResponse(p))
	}
	return out
}
