package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=2"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(samplePayload{Email: "not-an-email", Name: "x"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "name")
}

func TestValidatePasses(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(samplePayload{Email: "ok@example.com", Name: "ok"}))
}
