package search

import (
	"GlamoraBackend/internal/entity"
	"GlamoraBackend/pkg/cache"
	"context"
	"errors"
	"io"
	"regexp"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	mu       sync.Mutex
	products []entity.Product
	err      error

	patternCalls int
	patterns     []string
	listCalls    []entity.ProductFilter
	textCalls    []string
}

// postgresWordBoundary maps the POSIX word anchors to their RE2 equivalent.
var postgresWordBoundary = strings.NewReplacer(`\m`, `\b`, `\M`, `\b`)

func (f *fakeCatalog) FindProductsByPattern(_ context.Context, pattern string, limit int) ([]entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.patternCalls++
	f.patterns = append(f.patterns, pattern)
	if f.err != nil {
		return nil, f.err
	}

	re := regexp.MustCompile("(?i)" + postgresWordBoundary.Replace(pattern))
	var byName, other []entity.Product
	for _, p := range f.sorted(entity.ProductSortRatingDesc) {
		switch {
		case re.MatchString(p.Name):
			byName = append(byName, p)
		case re.MatchString(p.Description) || re.MatchString(p.Category):
			other = append(other, p)
		}
	}

	out := append(byName, other...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCatalog) ListProducts(_ context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls = append(f.listCalls, filter)
	if f.err != nil {
		return nil, f.err
	}

	var out []entity.Product
	for _, p := range f.sorted(filter.Sort) {
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}
		if filter.DescriptionPattern != "" && !regexp.MustCompile("(?i)"+filter.DescriptionPattern).MatchString(p.Description) {
			continue
		}
		out = append(out, p)
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeCatalog) SearchProductsText(_ context.Context, query string, limit int) ([]entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.textCalls = append(f.textCalls, query)
	if f.err != nil {
		return nil, f.err
	}
	return nil, nil
}

func (f *fakeCatalog) CountProducts(_ context.Context, category string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.products), nil
}

func (f *fakeCatalog) sorted(by entity.ProductSort) []entity.Product {
	out := append([]entity.Product(nil), f.products...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch by {
		case entity.ProductSortPriceAsc:
			return a.Price < b.Price
		case entity.ProductSortPriceDesc:
			return a.Price > b.Price
		case entity.ProductSortValue:
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			return a.Price < b.Price
		default:
			return a.Rating > b.Rating
		}
	})
	return out
}

func catalogFixture() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Hydrating Face Serum", Description: "Vitamin C serum for dry skin", Category: "Skincare", Price: 2500, Rating: 4.8},
		{ID: "2", Name: "Velvet Matte Foundation", Description: "Full coverage base", Category: "Makeup", Price: 1800, Rating: 4.5},
		{ID: "3", Name: "Gentle Cleanser", Description: "Soap free wash for oily skin", Category: "Skincare", Price: 900, Rating: 4.2},
		{ID: "4", Name: "Argan Hair Oil", Description: "Repairs split ends", Category: "Haircare", Price: 1500, Rating: 4.0},
		{ID: "5", Name: "Rose Eau de Parfum", Description: "Floral fragrance", Category: "Fragrance", Price: 6500, Rating: 4.7},
		{ID: "6", Name: "Nail Polish Set", Description: "Ten glossy shades", Category: "Nail Care", Price: 700, Rating: 3.9},
		{ID: "7", Name: "Kabuki Brush", Description: "Dense blending brush", Category: "Tools & Brushes", Price: 1100, Rating: 4.1},
	}
}

func newEngine(t *testing.T, catalog Catalog, c cache.Cache, opts ...Option) *Engine {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(catalog, c, log, opts...)
}

func TestRankOrdersByScoreThenRating(t *testing.T) {
	items := []entity.Product{
		{Name: "Glow Serum", Category: "Skincare", Rating: 4.0},
		{Name: "Night Serum", Category: "Skincare", Rating: 4.9},
		{Name: "Lip Balm", Category: "Makeup", Rating: 5.0},
	}

	matches := Rank(items, []string{"serum"}, DefaultThreshold, 0)

	require.Len(t, matches, 2)
	assert.Equal(t, "Night Serum", matches[0].Product.Name)
	assert.Equal(t, "Glow Serum", matches[1].Product.Name)
	assert.Equal(t, 1.0, matches[0].Score)
}

func TestRankToleratesTypos(t *testing.T) {
	matches := Rank(catalogFixture(), []string{"foundaton"}, DefaultThreshold, 5)

	require.NotEmpty(t, matches)
	assert.Equal(t, "Velvet Matte Foundation", matches[0].Product.Name)
}

func TestRankAppliesThresholdAndLimit(t *testing.T) {
	assert.Empty(t, Rank(catalogFixture(), []string{"laptop"}, DefaultThreshold, 5))
	assert.Empty(t, Rank(catalogFixture(), nil, DefaultThreshold, 5))
	assert.Len(t, Rank(catalogFixture(), []string{"skin"}, 0.5, 1), 1)
}

func TestScoreWeightsFields(t *testing.T) {
	p := entity.Product{Name: "Serum", Category: "Skincare", Description: "brightening"}

	assert.Equal(t, 1.0, Score(p, []string{"serum"}))
	assert.InDelta(t, 0.9, Score(p, []string{"skincare"}), 1e-9)
	assert.InDelta(t, 0.7, Score(p, []string{"brightening"}), 1e-9)
	assert.InDelta(t, 0.5, Score(p, []string{"serum", "laptop"}), 0.2)
}

func TestFindBestUsesPatternMatch(t *testing.T) {
	catalog := &fakeCatalog{products: catalogFixture()}
	engine := newEngine(t, catalog, cache.NewNop())

	p, found, err := engine.FindBest(context.Background(), "tell me about argan")

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "4", p.ID)
	assert.Empty(t, catalog.listCalls)
}

func TestFindBestPrefersProductCoveringAllKeywords(t *testing.T) {
	catalog := &fakeCatalog{products: []entity.Product{
		{ID: "a", Name: "Velvet Lipstick", Description: "Bold lip colour", Category: "Makeup", Rating: 4.9},
		{ID: "b", Name: "Tulip Mist", Description: "Floral body spray", Category: "Fragrance", Rating: 4.6},
		{ID: "c", Name: "Rose Eau de Parfum", Description: "Floral fragrance", Category: "Fragrance", Rating: 4.7},
		{ID: "d", Name: "Rose Lip Balm", Description: "Tinted balm", Category: "Makeup", Rating: 4.2},
	}}
	engine := newEngine(t, catalog, cache.NewNop())

	p, found, err := engine.FindBest(context.Background(), "tell me about rose lip balm")

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "d", p.ID)
	assert.Equal(t, []string{`\m(rose|lip|balm)\M`}, catalog.patterns)
}

func TestWordPattern(t *testing.T) {
	assert.Equal(t, `\m(serum)\M`, WordPattern([]string{"serum"}))
	assert.Equal(t, `\m(glow|serum)\M`, WordPattern([]string{"glow", "serum"}))
}

func TestFindBestFallsBackToFuzzy(t *testing.T) {
	catalog := &fakeCatalog{products: catalogFixture()}
	engine := newEngine(t, catalog, cache.NewNop())

	p, found, err := engine.FindBest(context.Background(), "cleanzer")

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Gentle Cleanser", p.Name)
}

func TestFindBestNotFound(t *testing.T) {
	catalog := &fakeCatalog{products: catalogFixture()}
	engine := newEngine(t, catalog, cache.NewNop())

	_, found, err := engine.FindBest(context.Background(), "quantum laptop")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, []string{"quantum laptop"}, catalog.textCalls)

	_, found, err = engine.FindBest(context.Background(), "   ")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindBestIsCached(t *testing.T) {
	catalog := &fakeCatalog{products: catalogFixture()}
	engine := newEngine(t, catalog, cache.NewMemory(cache.DefaultTTL))

	first, _, err := engine.FindBest(context.Background(), "Argan oil")
	require.NoError(t, err)
	second, _, err := engine.FindBest(context.Background(), "argan   OIL")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, catalog.patternCalls)
}

func TestFindBestPropagatesStoreErrors(t *testing.T) {
	boom := errors.New("connection refused")
	engine := newEngine(t, &fakeCatalog{err: boom}, cache.NewNop())

	_, _, err := engine.FindBest(context.Background(), "serum")
	assert.ErrorIs(t, err, boom)
}

func TestSearch(t *testing.T) {
	catalog := &fakeCatalog{products: catalogFixture()}
	engine := newEngine(t, catalog, cache.NewNop())

	got, err := engine.Search(context.Background(), "brush")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kabuki Brush", got[0].Name)

	got, err = engine.Search(context.Background(), "gaming console")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.Equal(t, []string{"gaming console"}, catalog.textCalls)
}

func TestRecommendCheapestFallsBackToPriceAscending(t *testing.T) {
	catalog := &fakeCatalog{products: catalogFixture()}
	engine := newEngine(t, catalog, cache.NewNop())

	rec, err := engine.Recommend(context.Background(), "cheapest lipstick", nil)

	require.NoError(t, err)
	assert.Equal(t, BucketAffordable, rec.Bucket)
	assert.False(t, rec.Personalized)
	require.NotEmpty(t, rec.Products)
	assert.LessOrEqual(t, len(rec.Products), 5)
	assert.True(t, sort.SliceIsSorted(rec.Products, func(i, j int) bool {
		return rec.Products[i].Price < rec.Products[j].Price
	}))
	assert.Equal(t, "Nail Polish Set", rec.Products[0].Name)
}

func TestRecommendBuckets(t *testing.T) {
	tests := []struct {
		query  string
		bucket string
		first  string
	}{
		{"show me the most expensive things", BucketPremium, "Rose Eau de Parfum"},
		{"what is most popular", BucketBestValue, "Hydrating Face Serum"},
		{"products for dry skin", "product_for:dry skin", "Hydrating Face Serum"},
		{"can you recommend something", BucketTopRated, "Hydrating Face Serum"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			// a strict threshold keeps fuzzy matching out of the way
			engine := newEngine(t, &fakeCatalog{products: catalogFixture()}, cache.NewNop(), WithThreshold(0.99))

			rec, err := engine.Recommend(context.Background(), tt.query, nil)

			require.NoError(t, err)
			assert.Equal(t, tt.bucket, rec.Bucket)
			require.NotEmpty(t, rec.Products)
			assert.LessOrEqual(t, len(rec.Products), 5)
			assert.Equal(t, tt.first, rec.Products[0].Name)
		})
	}
}

func TestRecommendPrefersFuzzyMatches(t *testing.T) {
	engine := newEngine(t, &fakeCatalog{products: catalogFixture()}, cache.NewNop())

	rec, err := engine.Recommend(context.Background(), "recommend a good serum", nil)

	require.NoError(t, err)
	assert.Equal(t, BucketFuzzy, rec.Bucket)
	require.Len(t, rec.Products, 1)
	assert.Equal(t, "Hydrating Face Serum", rec.Products[0].Name)
}

func TestRecommendPersonalizes(t *testing.T) {
	engine := newEngine(t, &fakeCatalog{products: catalogFixture()}, cache.NewNop())

	rec, err := engine.Recommend(context.Background(), "what do you recommend", []string{"skincare"})

	require.NoError(t, err)
	assert.True(t, rec.Personalized)
	require.NotEmpty(t, rec.Products)
	for _, p := range rec.Products {
		assert.Equal(t, "Skincare", p.Category)
	}
}

func TestRecommendKeepsUnfilteredWhenNothingPreferred(t *testing.T) {
	engine := newEngine(t, &fakeCatalog{products: catalogFixture()}, cache.NewNop())

	rec, err := engine.Recommend(context.Background(), "cheapest", []string{"electronics"})

	require.NoError(t, err)
	assert.False(t, rec.Personalized)
	assert.Len(t, rec.Products, 5)
}

func TestRecommendCachedMatchesFresh(t *testing.T) {
	catalog := &fakeCatalog{products: catalogFixture()}
	cached := newEngine(t, catalog, cache.NewMemory(cache.DefaultTTL))
	fresh := newEngine(t, &fakeCatalog{products: catalogFixture()}, cache.NewNop())

	first, err := cached.Recommend(context.Background(), "premium", nil)
	require.NoError(t, err)
	calls := len(catalog.listCalls)

	second, err := cached.Recommend(context.Background(), "premium", nil)
	require.NoError(t, err)
	uncached, err := fresh.Recommend(context.Background(), "premium", nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, uncached, second)
	assert.Equal(t, calls, len(catalog.listCalls))
}

func TestTopRatedInCategory(t *testing.T) {
	catalog := &fakeCatalog{products: catalogFixture()}
	engine := newEngine(t, catalog, cache.NewMemory(cache.DefaultTTL))

	got, err := engine.TopRatedInCategory(context.Background(), "skincare", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Hydrating Face Serum", got[0].Name)

	_, err = engine.TopRatedInCategory(context.Background(), "Skincare", 10)
	require.NoError(t, err)
	assert.Len(t, catalog.listCalls, 1)

	none, err := engine.TopRatedInCategory(context.Background(), "electronics", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPersonalize(t *testing.T) {
	items := catalogFixture()

	assert.Nil(t, Personalize(items, nil))
	assert.Len(t, Personalize(items, []string{" SKINCARE "}), 2)
	assert.Len(t, Personalize(items, []string{"makeup", "haircare"}), 2)
	assert.Nil(t, Personalize(items, []string{"electronics"}))
}

func TestClassifyBucket(t *testing.T) {
	tests := []struct {
		query string
		key   string
		sort  entity.ProductSort
	}{
		{"cheapest lipstick", BucketAffordable, entity.ProductSortPriceAsc},
		{"something on a budget", BucketAffordable, entity.ProductSortPriceAsc},
		{"your luxury range", BucketPremium, entity.ProductSortPriceDesc},
		{"best value palette", BucketBestValue, entity.ProductSortValue},
		{"product for oily skin", "product_for:oily skin", entity.ProductSortRatingDesc},
		{"anything nice", BucketTopRated, entity.ProductSortRatingDesc},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			b := classifyBucket(tt.query, DefaultLimit)
			assert.Equal(t, tt.key, b.key())
			assert.Equal(t, tt.sort, b.filter.Sort)
			assert.Equal(t, DefaultLimit, b.filter.Limit)
		})
	}
}
