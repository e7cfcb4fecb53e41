package nlp

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Similarity scores two words between 0 and 1. Identical words score 1, a word
// contained in the other scores the length ratio, anything else scores
// 1 - editDistance/maxLen.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	lenA := utf8.RuneCountInString(a)
	lenB := utf8.RuneCountInString(b)

	if strings.Contains(a, b) || strings.Contains(b, a) {
		shorter, longer := lenA, lenB
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		return float64(shorter) / float64(longer)
	}

	distance := levenshtein.ComputeDistance(a, b)
	maxLen := math.Max(float64(lenA), float64(lenB))

	return math.Max(0, 1.0-float64(distance)/maxLen)
}

// BestSimilarity returns the highest similarity between word and any of candidates.
func BestSimilarity(word string, candidates []string) float64 {
	best := 0.0
	for _, candidate := range candidates {
		if s := Similarity(word, candidate); s > best {
			best = s
			if best == 1 {
				break
			}
		}
	}
	return best
}
