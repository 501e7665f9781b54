package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorMessage(t *testing.T) {
	err := InvalidInput("decode post", fmt.Errorf("unexpected EOF"))

	assert.Equal(t, "INVALID_INPUT: decode post: unexpected EOF", err.Error())
	assert.NotEmpty(t, err.StackTrace())
	assert.Equal(t, "NOT_FOUND: post missing", NotFound("post missing", nil).Error())
}

func TestTypeOfWrapped(t *testing.T) {
	err := fmt.Errorf("fetch post 42: %w", NotFound("post not found", nil))

	assert.Equal(t, ErrTypeNotFound, TypeOf(err))
	assert.True(t, Is(err, ErrTypeNotFound))
	assert.False(t, Is(err, ErrTypeInternal))
	assert.Equal(t, ErrTypeInternal, TypeOf(fmt.Errorf("plain")))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(Unavailable("feed down", nil)))
	assert.True(t, Retryable(RateLimit("slow down", nil)))
	assert.True(t, Retryable(fmt.Errorf("plain")))
	assert.False(t, Retryable(InvalidInput("bad json", nil)))
	assert.False(t, Retryable(NotFound("gone", nil)))
	assert.False(t, Retryable(nil))
}
