package search

import (
	"GlamoraBackend/internal/entity"
	"regexp"
	"strings"
)

const (
	BucketFuzzy      = "fuzzy"
	BucketAffordable = "affordable"
	BucketPremium    = "premium"
	BucketBestValue  = "best_value"
	BucketProductFor = "product_for"
	BucketTopRated   = "top_rated"
)

var (
	affordableRe = regexp.MustCompile(`\b(cheapest|cheap|lowest price|affordable|budget|inexpensive)\b`)
	premiumRe    = regexp.MustCompile(`\b(highest price|most expensive|expensive|premium|luxury)\b`)
	bestValueRe  = regexp.MustCompile(`\b(best value|most popular|popular)\b`)
	productForRe = regexp.MustCompile(`\bproducts? for (.+)$`)
)

// recommendation filler words never describe the product being asked for
var recommendationFillers = map[string]bool{
	"recommend": true, "recommendation": true, "recommendations": true,
	"suggest": true, "suggestion": true, "suggestions": true, "buy": true,
	"best": true, "good": true, "should": true, "choose": true, "ideal": true,
	"product": true, "products": true, "item": true, "items": true,
	"something": true, "for": true, "find": true, "top": true,
}

type bucket struct {
	name   string
	filter entity.ProductFilter
}

// key identifies the bucket in the cache and in Recommendation.Bucket.
func (b bucket) key() string {
	if b.name == BucketProductFor {
		return b.name + ":" + b.filter.DescriptionPattern
	}
	return b.name
}

// classifyBucket maps a normalised recommendation query to its structured
// fallback listing.
func classifyBucket(normalized string, limit int) bucket {
	switch {
	case affordableRe.MatchString(normalized):
		return bucket{BucketAffordable, entity.ProductFilter{Sort: entity.ProductSortPriceAsc, Limit: limit}}
	case premiumRe.MatchString(normalized):
		return bucket{BucketPremium, entity.ProductFilter{Sort: entity.ProductSortPriceDesc, Limit: limit}}
	case bestValueRe.MatchString(normalized):
		return bucket{BucketBestValue, entity.ProductFilter{Sort: entity.ProductSortValue, Limit: limit}}
	}

	if m := productForRe.FindStringSubmatch(normalized); m != nil {
		if subject := strings.TrimSpace(m[1]); subject != "" {
			return bucket{BucketProductFor, entity.ProductFilter{
				DescriptionPattern: subject,
				Sort:               entity.ProductSortRatingDesc,
				Limit:              limit,
			}}
		}
	}

	return bucket{BucketTopRated, entity.ProductFilter{Sort: entity.ProductSortRatingDesc, Limit: limit}}
}
