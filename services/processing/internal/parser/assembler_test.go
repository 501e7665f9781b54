package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobocr/services/processing/internal/models"
	"jobocr/services/processing/internal/patterns"
	"jobocr/services/processing/internal/textnorm"
)

func newTestAssembler() *Assembler {
	return NewAssembler(patterns.Default(), NewNormalizer(patterns.Default(), textnorm.DefaultOptions()))
}

func TestAssembleFullPost(t *testing.T) {
	a := newTestAssembler()

	res := a.Assemble(models.RawText{
		Caption: "Vacante ofrecida por Microsoft",
		OCRText: "Puesto: Desarrollador Backend\nRequisitos: Python, pandas, Docker\nContacto: rrhh@microsoft.com\nwww.microsoft.com/careers",
	})

	require.NotNil(t, res.Company)
	require.NotNil(t, res.Title)
	assert.Equal(t, "Microsoft", *res.Company)
	assert.Equal(t, "Desarrollador Backend", *res.Title)
	assert.Equal(t, models.AreaDataScience, res.Area)
	assert.True(t, res.IsOpen)
	assert.Subset(t, res.Skills, []string{"Python", "Pandas", "Docker"})
	assert.Equal(t, []string{"rrhh@microsoft.com"}, res.Contact.Emails)
	assert.Equal(t, []string{"www.microsoft.com/careers"}, res.Contact.Websites)
}

func TestAssembleAdoptsDetectorGuess(t *testing.T) {
	a := newTestAssembler()

	res := a.Assemble(models.RawText{Caption: "Oferta de trabajo en Acme"})

	require.NotNil(t, res.Company)
	assert.Equal(t, "Acme", *res.Company)
}

func TestAssembleIgnoresUnknownSentinel(t *testing.T) {
	a := newTestAssembler()

	res := a.Assemble(models.RawText{Caption: "Oferta laboral disponible"})

	assert.Nil(t, res.Company)
}

func TestAssemblePrefersExtractedCompany(t *testing.T) {
	a := newTestAssembler()

	res := a.Assemble(models.RawText{OCRText: "Empresa: Globex\nOferta de trabajo en Acme"})

	require.NotNil(t, res.Company)
	assert.Equal(t, "Globex", *res.Company)
}

func TestAssembleClosedOffer(t *testing.T) {
	a := newTestAssembler()

	res := a.Assemble(models.RawText{OCRText: "Posicion cubierta"})

	assert.False(t, res.IsOpen)
}

func TestAssembleTotal(t *testing.T) {
	a := newTestAssembler()

	inputs := []models.RawText{
		{},
		{Caption: "   ", OCRText: "\n\t"},
		{OCRText: "Привет мир 你好 🚀"},
		{Caption: "\xff\xfe", OCRText: "\x00 Empresa: \xff"},
		{OCRText: strings.Repeat("Requisitos: Python, SQL, Docker, AWS, React, Vue, Go, Rust\n", 40)},
		{OCRText: strings.Repeat("Beneficios: a, bb, ccc, dddd, eeeee\n", 40)},
		{OCRText: strings.Repeat("@", 500) + strings.Repeat(".", 500)},
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			res := a.Assemble(in)
			assert.LessOrEqual(t, len(res.Skills), MaxSkills)
			assert.LessOrEqual(t, len(res.Benefits), MaxBenefits)
			assert.True(t, res.Area.Valid())
			assert.NotNil(t, res.Contact.Emails)
			assert.NotNil(t, res.Contact.Websites)
		})
	}
}
