package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobocr/services/processing/internal/patterns"
)

func TestSkillExtractorUsesSections(t *testing.T) {
	s := NewSkillExtractor(patterns.Default())

	got := s.Extract("Somos una empresa de React\nRequisitos: Python, Docker y Scrum\n\nOtros datos: se valora inglés")

	assert.Equal(t, map[string][]string{
		"programming_languages": {"python"},
		"devops":                {"docker"},
		"methodologies":         {"scrum"},
	}, got)
}

func TestSkillExtractorFallsBackToFullText(t *testing.T) {
	s := NewSkillExtractor(patterns.Default())

	got := s.Extract("Manejo de React y PostgreSQL")

	assert.Equal(t, map[string][]string{
		"web":       {"react"},
		"databases": {"postgresql"},
	}, got)
}

func TestSkillExtractorSortsWithinCategory(t *testing.T) {
	s := NewSkillExtractor(patterns.Default())

	got := s.Extract("Stack: vue, react, angular")

	assert.Equal(t, []string{"angular", "react", "vue"}, got["web"])
}

func TestSkillExtractorEmpty(t *testing.T) {
	s := NewSkillExtractor(patterns.Default())

	assert.Empty(t, s.Extract(""))
	assert.Empty(t, s.Extract("excelente actitud"))
}

func TestTopSkills(t *testing.T) {
	byCategory := map[string][]string{
		"web":       {"react", "vue"},
		"databases": {"mysql", "redis"},
		"devops":    {"docker"},
	}

	assert.Equal(t, []string{"docker", "mysql", "react"}, TopSkills(byCategory, 3))
	assert.Equal(t, []string{"docker", "mysql", "react", "redis", "vue"}, TopSkills(byCategory, 0))
	assert.Equal(t, []string{"devops"}, TopSkills(map[string][]string{
		"devops":        {"devops"},
		"methodologies": {"devops"},
	}, 5))
	assert.Empty(t, TopSkills(nil, 10))
}
