package search

import (
	"GlamoraBackend/internal/entity"
	"GlamoraBackend/pkg/nlp"
	"sort"
)

const (
	nameWeight        = 1.0
	categoryWeight    = 0.9
	descriptionWeight = 0.7
)

type Match struct {
	Product entity.Product
	Score   float64
}

// Rank scores every product against keywords and returns the matches at or
// above threshold, best first, capped at limit (limit <= 0 means no cap).
func Rank(products []entity.Product, keywords []string, threshold float64, limit int) []Match {
	if len(keywords) == 0 {
		return nil
	}

	var matches []Match
	for _, p := range products {
		score := Score(p, keywords)
		if score >= threshold {
			matches = append(matches, Match{Product: p, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if matches[i].Product.Rating != matches[j].Product.Rating {
			return matches[i].Product.Rating > matches[j].Product.Rating
		}
		return matches[i].Product.Name < matches[j].Product.Name
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches
}

// Score is the mean, over keywords, of the best weighted word similarity found
// in the product's name, category or description.
func Score(p entity.Product, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}

	name := nlp.Tokenize(p.Name)
	category := nlp.Tokenize(p.Category)
	description := nlp.Tokenize(p.Description)

	total := 0.0
	for _, keyword := range keywords {
		best := nameWeight * nlp.BestSimilarity(keyword, name)
		if s := categoryWeight * nlp.BestSimilarity(keyword, category); s > best {
			best = s
		}
		if s := descriptionWeight * nlp.BestSimilarity(keyword, description); s > best {
			best = s
		}
		total += best
	}

	return total / float64(len(keywords))
}

func products(matches []Match) []entity.Product {
	out := make([]entity.Product, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Product)
	}
	return out
}
