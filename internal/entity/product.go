package entity

import "time"

type Product struct {
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

type ProductSort uint8

const (
	ProductSortRatingDesc ProductSort = iota
	ProductSortPriceAsc
	ProductSortPriceDesc
	ProductSortValue
	ProductSortNewest
	ProductSortNameAsc
)

var ProductSortMap = map[ProductSort]string{
	ProductSortRatingDesc: "rating",
	ProductSortPriceAsc:   "price_asc",
	ProductSortPriceDesc:  "price_desc",
	ProductSortValue:      "value",
	ProductSortNewest:     "newest",
	ProductSortNameAsc:    "name",
}

func (s ProductSort) String() string {
	return ProductSortMap[s]
}

// ParseProductSort maps a query-string value to a sort, defaulting to rating.
func ParseProductSort(value string) ProductSort {
	for sort, name := range ProductSortMap {
		if name == value {
			return sort
		}
	}
	return ProductSortRatingDesc
}

// ProductFilter narrows a catalog listing. Empty fields do not filter;
// patterns are POSIX regular expressions matched case-insensitively.
type ProductFilter struct {
	Category           string
	DescriptionPattern string
	Sort               ProductSort
	Limit              int
	Offset             int
}
