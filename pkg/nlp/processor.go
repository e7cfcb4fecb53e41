package nlp

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var contractions = strings.NewReplacer(
	"what's", "what is",
	"where's", "where is",
	"when's", "when is",
	"how's", "how is",
	"who's", "who is",
	"that's", "that is",
	"it's", "it is",
	"i'm", "i am",
	"i've", "i have",
	"i'd", "i would",
	"you're", "you are",
	"don't", "do not",
	"doesn't", "does not",
	"didn't", "did not",
	"can't", "can not",
	"won't", "will not",
	"isn't", "is not",
	"haven't", "have not",
)

// Normalize lowercases text, strips diacritics, expands common English
// contractions and replaces everything that is not a letter or digit with a
// single space.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "’", "'")
	text = contractions.Replace(text)

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, text)
	if err != nil {
		result = text
	}

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, result)

	return strings.Join(strings.Fields(result), " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// Tokenize returns the normalised words of text.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}

// Stem reduces every token to its English stem. Stop words are stemmed too so
// that short trigger phrases ("how to") survive.
func Stem(tokens []string) []string {
	stemmed := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if s := english.Stem(token, true); s != "" {
			stemmed = append(stemmed, s)
		}
	}
	return stemmed
}
