package intent

import "GlamoraBackend/pkg/nlp"

type compiledDefinition struct {
	name    Intent
	phrases [][]string
}

// PatternClassifier tests the declaration-ordered trigger phrases of every
// intent against the input on word boundaries.
type PatternClassifier struct {
	taxonomy    Taxonomy
	definitions []compiledDefinition
}

func NewPatternClassifier(taxonomy Taxonomy) *PatternClassifier {
	definitions := make([]compiledDefinition, 0, len(taxonomy.Intents))
	for _, def := range taxonomy.Intents {
		compiled := compiledDefinition{name: def.Name}
		for _, phrase := range def.Phrases {
			if tokens := nlp.Tokenize(phrase); len(tokens) > 0 {
				compiled.phrases = append(compiled.phrases, tokens)
			}
		}
		definitions = append(definitions, compiled)
	}

	return &PatternClassifier{
		taxonomy:    taxonomy,
		definitions: definitions,
	}
}

func (c *PatternClassifier) Name() string {
	return StrategyPattern
}

func (c *PatternClassifier) Classify(text string) Intent {
	tokens := nlp.Tokenize(text)
	if len(tokens) == 0 {
		return c.taxonomy.Default
	}

	for _, def := range c.definitions {
		for _, phrase := range def.phrases {
			if nlp.ContainsPhrase(tokens, phrase) {
				return def.name
			}
		}
	}

	if fallback, ok := c.taxonomy.matchFallback(nlp.JoinTokens(tokens)); ok {
		return fallback
	}

	return c.taxonomy.Default
}
