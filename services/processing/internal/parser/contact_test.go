package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobocr/services/processing/internal/models"
	"jobocr/services/processing/internal/patterns"
)

func TestContactExtract(t *testing.T) {
	c := NewContactExtractor(patterns.Default())

	info := c.Extract("Contacto: Lic. Ana Pérez\nGerente de Recursos Humanos\nEnvía tu CV a rrhh@acme.com o empleos@acme.com\nTel: +507 6000-0000\nwww.acme.com/empleos")

	assert.Equal(t, "Lic. Ana Pérez", models.Deref(info.Name))
	assert.Equal(t, "Gerente de Recursos Humanos", models.Deref(info.Position))
	assert.Equal(t, []string{"rrhh@acme.com", "empleos@acme.com"}, info.Emails)
	assert.Equal(t, "+50760000000", models.Deref(info.Phone))
	assert.Equal(t, []string{"www.acme.com/empleos"}, info.Websites)
	assert.Equal(t, "Envía tu CV a rrhh@acme.com o empleos@acme.com", models.Deref(info.ApplicationInstructions))
}

func TestContactExtractEmpty(t *testing.T) {
	c := NewContactExtractor(patterns.Default())

	info := c.Extract("")

	assert.Nil(t, info.Name)
	assert.Nil(t, info.Position)
	assert.Nil(t, info.Phone)
	assert.Nil(t, info.ApplicationInstructions)
	require.NotNil(t, info.Emails)
	require.NotNil(t, info.Websites)
	assert.Empty(t, info.Emails)
	assert.Empty(t, info.Websites)
}

func TestContactWebsitesSkipEmailDomains(t *testing.T) {
	c := NewContactExtractor(patterns.Default())

	info := c.Extract("Escríbenos a rrhh@acme.com")

	assert.Equal(t, []string{"rrhh@acme.com"}, info.Emails)
	assert.Empty(t, info.Websites)
}

func TestContactObfuscatedEmail(t *testing.T) {
	c := NewContactExtractor(patterns.Default())

	info := c.Extract("Correo: rrhh (at) acme (dot) com")

	assert.Equal(t, []string{"rrhh@acme.com"}, info.Emails)
}

func TestContactDedupesEmails(t *testing.T) {
	c := NewContactExtractor(patterns.Default())

	info := c.Extract("rrhh@acme.com / RRHH@acme.com")

	assert.Equal(t, []string{"rrhh@acme.com"}, info.Emails)
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "+507 6000-0000", want: "+50760000000"},
		{raw: "(507) 123-4567", want: "5071234567"},
		{raw: " +1 (555) 010.9999 ", want: "+15550109999"},
		{raw: "abc", want: ""},
		{raw: "+", want: ""},
		{raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.raw))
		})
	}
}
