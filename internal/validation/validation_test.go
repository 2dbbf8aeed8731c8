package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	err := New("weight", "must be a positive number")
	assert.Equal(t, "weight: must be a positive number", err.Error())
	assert.Equal(t, "no field", New("", "no field").Error())
	assert.Equal(t, "reps: got -1", Errorf("reps", "got %d", -1).Error())
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("calculate: %w", New("reps", "required"))
	assert.True(t, Is(wrapped))
	assert.False(t, Is(errors.New("boom")))
	assert.False(t, Is(nil))
}
