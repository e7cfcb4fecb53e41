package intent

import (
	"GlamoraBackend/pkg/nlp"
	"math"

	"github.com/jbrukh/bayesian"
)

// scores closer than tieTolerance are equal; the intent declared first wins.
const tieTolerance = 1e-9

// BayesClassifier is a multinomial naive Bayes model over stemmed
// bag-of-words, trained once from the taxonomy phrases.
type BayesClassifier struct {
	taxonomy   Taxonomy
	classes    []bayesian.Class
	model      *bayesian.Classifier
	vocabulary map[string]bool
}

func NewBayesClassifier(taxonomy Taxonomy) *BayesClassifier {
	names := taxonomy.Names()
	classes := make([]bayesian.Class, 0, len(names))
	for _, name := range names {
		classes = append(classes, bayesian.Class(name))
	}
	// bayesian.NewClassifier needs at least two classes.
	if len(classes) < 2 {
		classes = append(classes, bayesian.Class("__none__"))
	}

	c := &BayesClassifier{
		taxonomy:   taxonomy,
		classes:    classes,
		model:      bayesian.NewClassifier(classes...),
		vocabulary: make(map[string]bool),
	}

	for _, def := range taxonomy.Intents {
		for _, phrase := range def.Phrases {
			doc := document(phrase)
			if len(doc) == 0 {
				continue
			}
			for _, word := range doc {
				c.vocabulary[word] = true
			}
			c.model.Learn(doc, bayesian.Class(def.Name))
		}
	}

	return c
}

func (c *BayesClassifier) Name() string {
	return StrategyBayes
}

func (c *BayesClassifier) Classify(text string) Intent {
	known := c.known(nlp.Tokenize(text))
	if len(known) == 0 {
		return c.taxonomy.Default
	}

	scores, _, _ := c.model.LogScores(known)
	return Intent(c.classes[bestScore(scores)])
}

// known keeps the trained content words of tokens. Trigger phrases made only
// of stop words ("tell me about") were trained on those stop words, so they
// are used when no content word is known.
func (c *BayesClassifier) known(tokens []string) []string {
	var content, all []string
	for _, token := range tokens {
		stems := nlp.Stem([]string{token})
		if len(stems) == 0 || !c.vocabulary[stems[0]] {
			continue
		}
		all = append(all, stems[0])
		if !nlp.IsStopWord(token) {
			content = append(content, stems[0])
		}
	}
	if len(content) > 0 {
		return content
	}
	return all
}

// bestScore returns the first index whose score is within tieTolerance of the
// maximum, so ties follow the taxonomy declaration order.
func bestScore(scores []float64) int {
	top := math.Inf(-1)
	for _, score := range scores {
		if score > top {
			top = score
		}
	}
	for i, score := range scores {
		if score >= top-tieTolerance {
			return i
		}
	}
	return 0
}

// document turns a training phrase into its stemmed bag-of-words. Stop words
// are dropped unless the phrase consists only of them.
func document(text string) []string {
	tokens := nlp.Tokenize(text)

	content := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !nlp.IsStopWord(token) {
			content = append(content, token)
		}
	}
	if len(content) == 0 {
		content = tokens
	}

	return nlp.Stem(content)
}
