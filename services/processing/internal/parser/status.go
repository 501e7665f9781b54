package parser

import (
	"strings"

	"jobocr/services/processing/internal/patterns"
	"jobocr/services/processing/internal/textnorm"
)

type StatusResolver struct {
	indicators []string
}

func NewStatusResolver(lib *patterns.Library) *StatusResolver {
	return &StatusResolver{indicators: lib.ClosureIndicators()}
}

// Resolve reports whether the offer is still open. Offers are open unless a
// closure indicator appears in the text.
func (r *StatusResolver) Resolve(text string) bool {
	folded := textnorm.Fold(text)
	for _, indicator := range r.indicators {
		if strings.Contains(folded, indicator) {
			return false
		}
	}
	return true
}
