package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobocr/services/processing/internal/patterns"
)

func TestResolve(t *testing.T) {
	r := NewStatusResolver(patterns.Default())

	assert.True(t, r.Resolve("Oferta abierta, aplica ya"))
	assert.False(t, r.Resolve("Posicion cubierta, ya no disponible"))
	assert.False(t, r.Resolve("VACANTE CUBIERTA"))
	assert.False(t, r.Resolve("This position has been filled"))
	assert.True(t, r.Resolve(""))
}
