package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTaxonomy(t *testing.T) {
	tax := DefaultTaxonomy()

	assert.Equal(t, GeneralQuery, tax.Default)
	require.NotEmpty(t, tax.Intents)
	assert.Equal(t, Greeting, tax.Intents[0].Name)
	assert.Contains(t, tax.Names(), OrderStatus)
	assert.Contains(t, tax.Names(), GeneralQuery)
}

func TestParseTaxonomyRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no intents", "default: general_query\n"},
		{"duplicate intent", "intents:\n  - name: greeting\n  - name: greeting\n"},
		{"bad fallback regex", "fallback:\n  intent: product_info\n  pattern: '('\nintents:\n  - name: greeting\n"},
		{"fallback without intent", "fallback:\n  pattern: 'kit'\nintents:\n  - name: greeting\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTaxonomy([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestPatternClassifier(t *testing.T) {
	c := NewPatternClassifier(DefaultTaxonomy())

	tests := []struct {
		input string
		want  Intent
	}{
		{"", GeneralQuery},
		{"   \t ", GeneralQuery},
		{"qwerty zxcvb", GeneralQuery},
		{"Hello!", Greeting},
		{"hi there", Greeting},
		{"Good morning, anything new?", Greeting},
		{"This thing", GeneralQuery},
		{"What's the status of my order?", OrderStatus},
		{"track order e345cd64-1537-465a-a171-277bee7856cf", OrderStatus},
		{"What is your return policy", ReturnPolicy},
		{"how long does shipping take", DeliveryTime},
		{"I have a complaint", Feedback},
		{"something for oily skin", SkinType},
		{"makeup for a wedding", Occasion},
		{"what's trending this season", Season},
		{"recommend a serum", ProductRecommendation},
		{"cheapest lipstick", ProductRecommendation},
		{"tell me about makeup", CategoryInfo},
		{"tell me about the velvet matte", ProductInfo},
		{"do you sell palettes", ProductInfo},
		{"how do I apply it", GeneralQuery},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.input))
		})
	}
}

func TestPatternClassifierIsDeterministic(t *testing.T) {
	c := NewPatternClassifier(DefaultTaxonomy())
	input := "hi, recommend me a lipstick and track my order"

	first := c.Classify(input)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, c.Classify(input))
	}
	assert.Equal(t, Greeting, first)
}

// Greeting precedence is a property of phrase matching: the Bayes model scores
// every word, so "hello, where is my order" leans towards order_status there.
func TestGreetingTriggersAlwaysClassifyAsGreeting(t *testing.T) {
	tax := DefaultTaxonomy()
	c := NewPatternClassifier(tax)

	for _, phrase := range tax.Intents[0].Phrases {
		t.Run(phrase, func(t *testing.T) {
			assert.Equal(t, Greeting, c.Classify(phrase+", where is my order?"))
		})
	}
}

func TestBayesClassifier(t *testing.T) {
	c := NewBayesClassifier(DefaultTaxonomy())

	tests := []struct {
		input string
		want  Intent
	}{
		{"", GeneralQuery},
		{"  ", GeneralQuery},
		{"xyzzy plugh", GeneralQuery},
		{"hello", Greeting},
		{"Can you track my order?", OrderStatus},
		{"I want a refund", ReturnPolicy},
		{"recommend a serum", ProductRecommendation},
		{"cheapest lipstick", ProductRecommendation},
		{"affordable lipstick", ProductRecommendation},
		{"most expensive perfume", ProductRecommendation},
		{"tell me about glow serum", ProductInfo},
		{"what is the glow serum", ProductInfo},
		{"What's the price of the rose lip balm?", ProductInfo},
		{"lipstick", ProductInfo},
		{"tell me about makeup", CategoryInfo},
		{"I have a complaint", Feedback},
		{"What is your return policy", ReturnPolicy},
		{"how long does shipping take", DeliveryTime},
		{"what's trending this season", Season},
		{"how do I apply it", GeneralQuery},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.input))
		})
	}
}

func TestBestScoreBreaksTiesByDeclarationOrder(t *testing.T) {
	assert.Equal(t, 1, bestScore([]float64{-30, -12.5, -12.5, -40}))
	assert.Equal(t, 1, bestScore([]float64{-30, -12.5, -12.5 + tieTolerance/2}))
	assert.Equal(t, 2, bestScore([]float64{-30, -12.5, -12}))
	assert.Equal(t, 0, bestScore([]float64{-1}))
}

func TestBayesClassifierIsDeterministic(t *testing.T) {
	a := NewBayesClassifier(DefaultTaxonomy())
	b := NewBayesClassifier(DefaultTaxonomy())

	for _, input := range []string{"track my order", "refund please", "hiya", "skincare"} {
		assert.Equal(t, a.Classify(input), b.Classify(input), input)
	}
}

func TestNewSelectsStrategy(t *testing.T) {
	tax := DefaultTaxonomy()

	assert.Equal(t, StrategyBayes, New("Bayes", tax).Name())
	assert.Equal(t, StrategyPattern, New("pattern", tax).Name())
	assert.Equal(t, StrategyPattern, New("unknown", tax).Name())
}
