package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobocr/services/processing/internal/models"
	"jobocr/services/processing/internal/patterns"
)

func TestClassify(t *testing.T) {
	c := NewAreaClassifier(patterns.Default())

	tests := []struct {
		text string
		want models.Area
	}{
		{text: "experiencia en Python, pandas y machine learning", want: models.AreaDataScience},
		{text: "conocimientos en JavaScript, React y Node.js", want: models.AreaWebDev},
		{text: "texto sin relacion tecnica", want: models.AreaGeneral},
		{text: "", want: models.AreaGeneral},
		{text: "Desarrollo de apps con Flutter y Kotlin para Android", want: models.AreaMobile},
		{text: "Administrador de sistemas Linux y Windows Server", want: models.AreaSystems},
		{text: "Analista de ciberseguridad, pentesting y firewall", want: models.AreaCyber},
		{text: "python y javascript", want: models.AreaDataScience},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text))
		})
	}
}

func TestScores(t *testing.T) {
	c := NewAreaClassifier(patterns.Default())

	scores := c.Scores("REACT y Docker")

	assert.Equal(t, 1, scores[models.AreaWebDev])
	assert.Equal(t, 1, scores[models.AreaSystems])
	assert.Equal(t, 0, scores[models.AreaCyber])
	assert.Len(t, scores, len(models.Areas))
}

func TestClassifyTieGoesToFirstArea(t *testing.T) {
	lib := patterns.MustBuild(nil, patterns.Tables{AreaKeywords: []patterns.AreaKeywords{
		{Area: models.AreaCyber, Keywords: []string{"alpha"}},
		{Area: models.AreaMobile, Keywords: []string{"beta"}},
	}})
	c := NewAreaClassifier(lib)

	assert.Equal(t, models.AreaCyber, c.Classify("beta alpha"))
	assert.Equal(t, models.AreaMobile, c.Classify("beta beta"))
}
