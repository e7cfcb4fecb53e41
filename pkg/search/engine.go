package search

import (
	"GlamoraBackend/internal/entity"
	"GlamoraBackend/pkg/cache"
	contextPkg "GlamoraBackend/pkg/context"
	"GlamoraBackend/pkg/nlp"
	"context"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

type bestMatch struct {
	Product entity.Product `json:"product"`
	Found   bool           `json:"found"`
}

// patternCandidates bounds how many whole-word hits FindBest re-ranks.
const patternCandidates = 20

// FindBest resolves query to a single product: whole-word matches of its
// keywords on name, description or category first, ranked by how well they
// cover all keywords, then the best fuzzy match, then the most relevant
// full-text hit.
func (e *Engine) FindBest(ctx context.Context, query string) (entity.Product, bool, error) {
	keywords := nlp.Keywords(query)
	if len(keywords) == 0 {
		return entity.Product{}, false, nil
	}

	result, err := cache.Remember(ctx, e.cache, cache.Key("product", nlp.JoinTokens(keywords)),
		func(ctx context.Context) (bestMatch, error) {
			candidates, err := e.catalog.FindProductsByPattern(ctx, WordPattern(keywords), patternCandidates)
			if err != nil {
				return bestMatch{}, e.logError(ctx, err, "FindBest pattern lookup failed")
			}
			if matches := Rank(candidates, keywords, 0, 1); len(matches) > 0 {
				return bestMatch{Product: matches[0].Product, Found: true}, nil
			}

			pool, err := e.pool(ctx)
			if err != nil {
				return bestMatch{}, err
			}
			if matches := Rank(pool, keywords, e.threshold, 1); len(matches) > 0 {
				return bestMatch{Product: matches[0].Product, Found: true}, nil
			}

			hits, err := e.catalog.SearchProductsText(ctx, nlp.JoinTokens(keywords), 1)
			if err != nil {
				return bestMatch{}, e.logError(ctx, err, "FindBest text search failed")
			}
			if len(hits) > 0 {
				return bestMatch{Product: hits[0], Found: true}, nil
			}

			return bestMatch{}, nil
		})
	if err != nil {
		return entity.Product{}, false, err
	}

	return result.Product, result.Found, nil
}

// WordPattern builds a case-insensitive POSIX pattern matching any keyword as
// a whole word. Keywords are normalised tokens, so they carry no metacharacters.
func WordPattern(keywords []string) string {
	return `\m(` + strings.Join(keywords, "|") + `)\M`
}

// Search returns up to the engine limit of products for query, fuzzy matches
// first and full-text relevance when nothing is close enough.
func (e *Engine) Search(ctx context.Context, query string) ([]entity.Product, error) {
	keywords := nlp.Keywords(query)
	if len(keywords) == 0 {
		return []entity.Product{}, nil
	}

	return cache.Remember(ctx, e.cache, cache.Key("search", nlp.JoinTokens(keywords)),
		func(ctx context.Context) ([]entity.Product, error) {
			pool, err := e.pool(ctx)
			if err != nil {
				return nil, err
			}
			if matches := Rank(pool, keywords, e.threshold, e.limit); len(matches) > 0 {
				return products(matches), nil
			}

			hits, err := e.catalog.SearchProductsText(ctx, nlp.JoinTokens(keywords), e.limit)
			if err != nil {
				return nil, e.logError(ctx, err, "Search text search failed")
			}
			if hits == nil {
				hits = []entity.Product{}
			}
			return hits, nil
		})
}

// Recommend answers a recommendation query. Fuzzy matches win; otherwise the
// query picks a structured listing (cheapest, most expensive, best value,
// "products for X", top rated). When preferences are given and some results
// fall in a preferred category, only those are returned.
func (e *Engine) Recommend(ctx context.Context, query string, preferences []string) (Recommendation, error) {
	rec := Recommendation{Products: []entity.Product{}}

	keywords := nlp.KeywordsExcluding(query, recommendationFillers)
	if len(keywords) > 0 {
		pool, err := e.pool(ctx)
		if err != nil {
			return Recommendation{}, err
		}
		if matches := Rank(pool, keywords, e.threshold, e.limit); len(matches) > 0 {
			rec.Products = products(matches)
			rec.Bucket = BucketFuzzy
		}
	}

	if rec.Bucket == "" {
		b := classifyBucket(nlp.Normalize(query), e.limit)
		listed, err := cache.Remember(ctx, e.cache, cache.Key("recommend", b.key(), strconv.Itoa(e.limit)),
			func(ctx context.Context) ([]entity.Product, error) {
				list, err := e.catalog.ListProducts(ctx, b.filter)
				if err != nil {
					return nil, e.logError(ctx, err, "Recommend listing failed")
				}
				if list == nil {
					list = []entity.Product{}
				}
				return list, nil
			})
		if err != nil {
			return Recommendation{}, err
		}
		rec.Products = listed
		rec.Bucket = b.key()
	}

	if preferred := Personalize(rec.Products, preferences); len(preferred) > 0 {
		rec.Products = preferred
		rec.Personalized = true
	}

	return rec, nil
}

// TopRatedInCategory lists the best rated products of category.
func (e *Engine) TopRatedInCategory(ctx context.Context, category string, limit int) ([]entity.Product, error) {
	if limit <= 0 {
		limit = e.limit
	}

	return cache.Remember(ctx, e.cache, cache.Key("category", category, strconv.Itoa(limit)),
		func(ctx context.Context) ([]entity.Product, error) {
			list, err := e.catalog.ListProducts(ctx, entity.ProductFilter{
				Category: category,
				Sort:     entity.ProductSortRatingDesc,
				Limit:    limit,
			})
			if err != nil {
				return nil, e.logError(ctx, err, "TopRatedInCategory listing failed")
			}
			if list == nil {
				list = []entity.Product{}
			}
			return list, nil
		})
}

// Personalize keeps the products whose category is one of preferences,
// compared case-insensitively. It returns nil when nothing is preferred.
func Personalize(items []entity.Product, preferences []string) []entity.Product {
	if len(preferences) == 0 {
		return nil
	}

	preferred := make(map[string]bool, len(preferences))
	for _, p := range preferences {
		preferred[strings.ToLower(strings.TrimSpace(p))] = true
	}

	var out []entity.Product
	for _, item := range items {
		if preferred[strings.ToLower(item.Category)] {
			out = append(out, item)
		}
	}

	return out
}

// pool loads the fuzzy-search candidates, best rated first.
func (e *Engine) pool(ctx context.Context) ([]entity.Product, error) {
	return cache.Remember(ctx, e.cache, cache.Key("catalog", "pool", strconv.Itoa(e.poolSize)),
		func(ctx context.Context) ([]entity.Product, error) {
			total, err := e.catalog.CountProducts(ctx, "")
			if err != nil {
				return nil, e.logError(ctx, err, "Candidate pool count failed")
			}
			if total == 0 {
				return []entity.Product{}, nil
			}
			if total > e.poolSize {
				total = e.poolSize
			}

			list, err := e.catalog.ListProducts(ctx, entity.ProductFilter{
				Sort:  entity.ProductSortRatingDesc,
				Limit: total,
			})
			if err != nil {
				return nil, e.logError(ctx, err, "Candidate pool listing failed")
			}
			return list, nil
		})
}

func (e *Engine) logError(ctx context.Context, err error, message string) error {
	if e.log != nil {
		e.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error(message)
	}
	return err
}
