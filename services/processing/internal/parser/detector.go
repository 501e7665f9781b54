package parser

import (
	"strings"

	"jobocr/services/processing/internal/patterns"
)

// UnknownCompany is returned as the company guess when a trigger matched but
// captured no company. It is never a real company name.
const UnknownCompany = "Unknown"

// Detector decides whether a text is a job posting.
type Detector struct {
	rules []patterns.Rule
}

func NewDetector(lib *patterns.Library) *Detector {
	return &Detector{rules: lib.Rules(patterns.FieldJobTrigger)}
}

// Detect tries the trigger rules in order and stops at the first match. The
// company guess is empty when nothing matched.
func (d *Detector) Detect(text string) (bool, string) {
	for _, rule := range d.rules {
		m := rule.Re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if rule.Group == 0 {
			return true, UnknownCompany
		}
		guess := strings.TrimSpace(m[rule.Group])
		if guess == "" {
			return true, UnknownCompany
		}
		return true, guess
	}
	return false, ""
}
