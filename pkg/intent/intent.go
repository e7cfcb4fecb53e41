// Package intent classifies free-text shopper messages into a closed set of
// symbolic intents. Two interchangeable strategies are provided: an ordered
// phrase matcher and a naive Bayes model trained from the same phrase table.
package intent

import "strings"

type Intent string

const (
	Greeting              Intent = "greeting"
	ProductInfo           Intent = "product_info"
	ProductRecommendation Intent = "product_recommendation"
	OrderStatus           Intent = "order_status"
	CategoryInfo          Intent = "category_info"
	SkinType              Intent = "skin_type"
	Season                Intent = "season"
	Occasion              Intent = "occasion"
	ReturnPolicy          Intent = "return_policy"
	DeliveryTime          Intent = "delivery_time"
	Feedback              Intent = "feedback"
	GeneralQuery          Intent = "general_query"
)

func (i Intent) String() string {
	return string(i)
}

// Classifier maps raw text to exactly one Intent. Implementations never fail;
// unrecognised or empty input resolves to the taxonomy default.
type Classifier interface {
	Classify(text string) Intent
	Name() string
}

const (
	StrategyPattern = "pattern"
	StrategyBayes   = "bayes"
)

// New returns the classifier registered under strategy. Unknown names fall
// back to the pattern matcher.
func New(strategy string, taxonomy Taxonomy) Classifier {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case StrategyBayes:
		return NewBayesClassifier(taxonomy)
	default:
		return NewPatternClassifier(taxonomy)
	}
}
