package validator

import (
	"testing"

	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ReportsFieldsByJSONName(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.LoginInput{Email: "not-an-email"})
	require.Error(t, err)

	var validationErr *usecase.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, map[string]string{
		"email":    "must be a valid email address",
		"password": "is required",
	}, validationErr.Fields)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&usecase.LoginInput{Email: "ops@example.com", Password: "secret"}))
}
