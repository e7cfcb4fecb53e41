package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases and trims", "  Hello THERE  ", "hello there"},
		{"expands contractions", "What's the status?", "what is the status"},
		{"curly apostrophe", "Where’s my package", "where is my package"},
		{"strips punctuation", "bath & body!!", "bath body"},
		{"strips diacritics", "Crème brûlée", "creme brulee"},
		{"whitespace only", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"matte", "lipstick"}, Keywords("Tell me about the matte lipstick, the lipstick"))
	assert.Empty(t, Keywords("what is the"))
	assert.Equal(t, []string{"lipstick"}, KeywordsExcluding("recommend a lipstick", map[string]bool{"recommend": true}))
}

func TestContainsPhrase(t *testing.T) {
	tokens := Tokenize("Can you track my order please")

	assert.True(t, ContainsPhrase(tokens, []string{"track", "my", "order"}))
	assert.False(t, ContainsPhrase(tokens, []string{"track", "order"}))
	assert.False(t, ContainsPhrase(tokens, nil))
	assert.False(t, ContainsPhrase(Tokenize("this"), []string{"hi"}))
}

func TestFindTerm(t *testing.T) {
	term, ok := FindTerm("Something for OILY skin?", []string{"dry skin", "oily skin"})
	assert.True(t, ok)
	assert.Equal(t, "oily skin", term)

	_, ok = FindTerm("skin stuff", []string{"dry skin", "oily skin"})
	assert.False(t, ok)
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("lipstick", "lipstick"))
	assert.InDelta(t, 0.875, Similarity("lipstik", "lipstick"), 0.001)
	assert.InDelta(t, 8.0/9.0, Similarity("lipstick", "lipsticks"), 0.001)
	assert.Equal(t, 0.0, Similarity("", "lipstick"))
	assert.Less(t, Similarity("serum", "palette"), 0.5)
	assert.Equal(t, 1.0, BestSimilarity("serum", []string{"hydrating", "serum"}))
}

func TestStem(t *testing.T) {
	assert.Equal(t, []string{"recommend", "lipstick"}, Stem([]string{"recommending", "lipsticks"}))
}
