package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name     string `validate:"required"`
	Password string `validate:"required,min=6"`
}

func TestValidatePasses(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(&sampleForm{Name: "Alice", Password: "secret1"}))
}

func TestHasTag(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleForm{Password: "secret1"})
	require.Error(t, err)
	assert.True(t, HasTag(err, "required"))
	assert.False(t, HasTag(err, "min"))

	err = v.Validate(&sampleForm{Name: "Alice", Password: "abc"})
	require.Error(t, err)
	assert.True(t, HasTag(err, "min"))
	assert.False(t, HasTag(err, "required"))
}

func TestHasTagNonValidationError(t *testing.T) {
	assert.False(t, HasTag(errors.New("boom"), "required"))
}

func TestFormatValidationError(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleForm{Name: "Alice", Password: "abc"})
	require.Error(t, err)
	assert.Equal(t, "password must be at least 6 characters long", v.FormatValidationError(err))

	assert.Equal(t, "Invalid request body", v.FormatValidationError(errors.New("boom")))
}
