package nlp

import "strings"

var stopWords = map[string]bool{
	"the": true, "is": true, "about": true, "of": true, "a": true, "an": true,
	"this": true, "that": true, "these": true, "those": true, "it": true,
	"i": true, "me": true, "my": true, "you": true, "your": true, "we": true,
	"tell": true, "what": true, "which": true, "how": true, "show": true,
	"give": true, "some": true, "any": true, "to": true, "in": true, "on": true,
	"with": true, "and": true, "or": true, "do": true, "does": true, "are": true,
	"am": true, "be": true, "can": true, "could": true, "would": true, "will": true,
	"please": true, "there": true, "have": true, "has": true, "get": true,
	"want": true, "need": true, "looking": true, "like": true, "info": true,
	"information": true, "details": true, "detail": true, "know": true,
}

// IsStopWord reports whether word carries no search value.
func IsStopWord(word string) bool {
	return stopWords[word]
}

// Keywords extracts the distinct, order-preserving search terms of text.
func Keywords(text string) []string {
	return KeywordsExcluding(text, nil)
}

// KeywordsExcluding behaves like Keywords and additionally drops every word in exclude.
func KeywordsExcluding(text string, exclude map[string]bool) []string {
	seen := make(map[string]bool)
	var keywords []string

	for _, token := range Tokenize(text) {
		if len(token) < 2 || stopWords[token] || exclude[token] || seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
	}

	return keywords
}

// ContainsPhrase reports whether phrase occurs in tokens as a contiguous run
// of whole words.
func ContainsPhrase(tokens []string, phrase []string) bool {
	if len(phrase) == 0 || len(phrase) > len(tokens) {
		return false
	}

	for i := 0; i+len(phrase) <= len(tokens); i++ {
		match := true
		for j, word := range phrase {
			if tokens[i+j] != word {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}

	return false
}

// FindTerm returns the first vocabulary term, in vocabulary order, that occurs
// in text on word boundaries.
func FindTerm(text string, vocabulary []string) (string, bool) {
	tokens := Tokenize(text)
	for _, term := range vocabulary {
		if ContainsPhrase(tokens, Tokenize(term)) {
			return term, true
		}
	}
	return "", false
}

// JoinTokens joins tokens back into a normalised phrase.
func JoinTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}
