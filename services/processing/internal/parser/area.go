package parser

import (
	"strings"

	"jobocr/services/processing/internal/models"
	"jobocr/services/processing/internal/patterns"
	"jobocr/services/processing/internal/textnorm"
)

type AreaClassifier struct {
	lib *patterns.Library
}

func NewAreaClassifier(lib *patterns.Library) *AreaClassifier {
	return &AreaClassifier{lib: lib}
}

// Scores counts, per area, how many of its keywords occur in the text.
func (c *AreaClassifier) Scores(text string) map[models.Area]int {
	folded := textnorm.Fold(text)
	scores := make(map[models.Area]int, len(c.lib.Areas()))
	for _, area := range c.lib.Areas() {
		scores[area.Area] = countHits(folded, area.Keywords)
	}
	return scores
}

// Classify returns the highest scoring area. Ties go to the area listed
// first; no hits at all yields AreaGeneral.
func (c *AreaClassifier) Classify(text string) models.Area {
	folded := textnorm.Fold(text)
	best, bestScore := models.AreaGeneral, 0
	for _, area := range c.lib.Areas() {
		if score := countHits(folded, area.Keywords); score > bestScore {
			best, bestScore = area.Area, score
		}
	}
	return best
}

func countHits(folded string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(folded, kw) {
			hits++
		}
	}
	return hits
}
