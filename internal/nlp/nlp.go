// Package nlp defines the capability interfaces for external NLP
// collaborators (named-entity recognition and sentiment classification)
// together with deterministic rule-based default implementations, so the
// scoring core works without a model service and tests can substitute
// fixtures.
package nlp

import "context"

// Entity is a recognized span of text with its label.
// Labels include at least "ORG" (organization), "GPE" (geopolitical
// entity), and "LOC" (location).
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// EntityRecognizer extracts named entities from free text.
type EntityRecognizer interface {
	Entities(ctx context.Context, text string) ([]Entity, error)
}

// SentimentClassifier labels text as "positive", "negative", or "neutral".
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (string, error)
}
