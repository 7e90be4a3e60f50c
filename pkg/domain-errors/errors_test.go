package dErrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	t.Run("direct domain error", func(t *testing.T) {
		err := New(CodeNotFound, "profile not found")
		assert.Equal(t, CodeNotFound, CodeOf(err))
	})

	t.Run("wrapped domain error", func(t *testing.T) {
		inner := New(CodeConflict, "membership exists")
		err := fmt.Errorf("joining club: %w", inner)
		assert.Equal(t, CodeConflict, CodeOf(err))
	})

	t.Run("unknown error maps to internal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	})
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeInternal, "profile fetch failed")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "profile fetch failed")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "profile fetch failed", MessageOf(err))
}
