package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobocr/services/processing/internal/models"
	"jobocr/services/processing/internal/patterns"
	"jobocr/services/processing/internal/textnorm"
)

func newTestNormalizer() *textnorm.Normalizer {
	return NewNormalizer(patterns.Default(), textnorm.DefaultOptions())
}

func TestAreaKeywordsSurviveNormalization(t *testing.T) {
	n := newTestNormalizer()
	c := NewAreaClassifier(patterns.Default())

	for _, area := range patterns.DefaultTables().AreaKeywords {
		for _, kw := range area.Keywords {
			t.Run(kw, func(t *testing.T) {
				normalized := n.Normalize(kw)
				assert.Positive(t, c.Scores(normalized)[area.Area], "normalized to %q", normalized)
			})
		}
	}
}

func TestClosureIndicatorsSurviveNormalization(t *testing.T) {
	n := newTestNormalizer()
	r := NewStatusResolver(patterns.Default())

	for _, indicator := range patterns.DefaultTables().ClosureIndicators {
		t.Run(indicator, func(t *testing.T) {
			normalized := n.Normalize(indicator)
			assert.False(t, r.Resolve(normalized), "normalized to %q", normalized)
		})
	}
}

func TestWhitelistSurvivesNormalization(t *testing.T) {
	n := newTestNormalizer()
	e := NewFieldExtractor(patterns.Default())

	for _, term := range patterns.DefaultTables().TechWhitelist {
		t.Run(term, func(t *testing.T) {
			normalized := n.Normalize(term)
			assert.Contains(t, e.Skills(normalized), term, "normalized to %q", normalized)
		})
	}
}

func TestCatalogSurvivesNormalization(t *testing.T) {
	n := newTestNormalizer()
	s := NewSkillExtractor(patterns.Default())

	for _, category := range patterns.DefaultTables().SkillCatalog {
		for _, skill := range category.Skills {
			t.Run(category.Name+"/"+skill, func(t *testing.T) {
				normalized := n.Normalize(skill)
				assert.Contains(t, s.Extract(normalized)[category.Name], skill, "normalized to %q", normalized)
			})
		}
	}
}

func TestTriggersSurviveNormalization(t *testing.T) {
	n := newTestNormalizer()
	d := NewDetector(patterns.Default())

	phrases := []string{
		"Vacante ofrecida por Acme",
		"Oferta de trabajo en Acme",
		"Se busca analista para proyecto en Acme",
		"La empresa Acme solicita personal",
		"Job opening at Acme",
		"Acme is hiring",
		"Join our team at Acme",
		"Oferta laboral",
		"Vacante",
		"Se solicita personal",
		"Solicitamos desarrollador",
		"Pasantía",
		"Convocatoria",
		"Internship",
		"We are hiring",
	}

	for _, phrase := range phrases {
		t.Run(phrase, func(t *testing.T) {
			normalized := n.Normalize(phrase)
			ok, _ := d.Detect(normalized)
			assert.True(t, ok, "normalized to %q", normalized)
		})
	}
}

func TestDeadlinesSurviveNormalization(t *testing.T) {
	n := newTestNormalizer()
	e := NewFieldExtractor(patterns.Default())

	tests := []struct {
		text string
		want string
	}{
		{text: "Deadline: 15 de julio", want: "15 de julio"},
		{text: "Aplica antes del 20 de julio", want: "20 de julio"},
		{text: "Válido hasta el 30 de junio", want: "30 de junio"},
		{text: "Closing date: 1/6/25", want: "1-6-25"},
		{text: "Cierre 30/06/2025", want: "30-06-2025"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			res := e.Extract(n.Normalize(tt.text))
			require.NotNil(t, res.Deadline)
			assert.Equal(t, tt.want, *res.Deadline)
		})
	}
}

func TestSymbolSkillsKeepTheirSpelling(t *testing.T) {
	n := newTestNormalizer()
	e := NewFieldExtractor(patterns.Default())
	s := NewSkillExtractor(patterns.Default())

	normalized := n.Normalize("Requisitos: C#, CI/CD, SQL")

	skills := e.Skills(normalized)
	require.NotEmpty(t, skills)
	assert.Equal(t, "C#", skills[0])
	assert.NotContains(t, skills, "Csharp")
	got := s.Extract(normalized)
	assert.Equal(t, []string{"c#"}, got["programming_languages"])
	assert.Equal(t, []string{"ci/cd"}, got["devops"])
}

func TestAssembleKeepsVocabularyIntact(t *testing.T) {
	a := newTestAssembler()

	res := a.Assemble(models.RawText{
		Caption: "Job opening at Acme. Position closed.",
		OCRText: "Requirements: Kotlin, Kubernetes, Oracle",
	})

	assert.False(t, res.IsOpen)
	assert.Subset(t, res.Skills, []string{"Kotlin", "Kubernetes", "Oracle"})
	assert.Equal(t, models.AreaMobile, res.Area)
	require.NotNil(t, res.Company)
	assert.Equal(t, "Acme", *res.Company)
}

func TestAssembleSlashDate(t *testing.T) {
	a := newTestAssembler()

	res := a.Assemble(models.RawText{OCRText: "Vacante de analista. Cierre 30/06/2025"})

	require.NotNil(t, res.Deadline)
	assert.Equal(t, "30-06-2025", *res.Deadline)
}
