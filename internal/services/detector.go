package services

import (
	"strings"
)

// Classifier decides whether an answer body looks machine-generated.
type Classifier interface {
	IsAiGenerated(body string) bool
}

// SubstringClassifier flags bodies containing a fixed marker phrase.
// Placeholder heuristic until a real model sits behind the interface.
type SubstringClassifier struct {
	Marker string
}

func NewSubstringClassifier() *SubstringClassifier {
	return &SubstringClassifier{Marker: "this is ai"}
}

func (c *SubstringClassifier) IsAiGenerated(body string) bool {
	// Case-sensitive on purpose: "This is AI" does not match.
	return strings.Contains(body, c.Marker)
}
