package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHosts(t *testing.T) {
	assert.Equal(t, []string{"localhost:9000"}, hosts("localhost:9000"))
	assert.Equal(t, []string{"ch1:9000", "ch2:9000"}, hosts("ch1:9000, ch2:9000?secure=false"))
	assert.Empty(t, hosts("?debug=true"))
}
