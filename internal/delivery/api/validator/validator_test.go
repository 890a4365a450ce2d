package validator

import (
	"testing"

	domainerrors "shopradar/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     *string  `json:"name" validate:"required"`
	Latitude *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Email    *string  `json:"email" validate:"omitempty,email"`
	Password string   `form:"password" validate:"max=4"`
}

func ptr[T any](v T) *T {
	return &v
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Name: ptr(""), Latitude: ptr(90.0)}))
	assert.NoError(t, v.Validate(&sample{Name: ptr("x"), Latitude: ptr(-90.0), Email: ptr("a@b.co")}))
}

func TestValidate_ReportsWireNames(t *testing.T) {
	tests := []struct {
		name    string
		input   *sample
		details string
	}{
		{
			name:    "missing fields",
			input:   &sample{},
			details: "name is required; latitude is required",
		},
		{
			name:    "latitude out of range",
			input:   &sample{Name: ptr("x"), Latitude: ptr(91.0)},
			details: "latitude must be less than or equal to 90",
		},
		{
			name:    "bad email",
			input:   &sample{Name: ptr("x"), Latitude: ptr(0.0), Email: ptr("nope")},
			details: "email must be a valid email address",
		},
		{
			name:    "form tag",
			input:   &sample{Name: ptr("x"), Latitude: ptr(0.0), Password: "toolong"},
			details: "password must be at most 4 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Validate(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}

func TestValidate_NonStructIsNotAValidationFailure(t *testing.T) {
	err := New().Validate("not a struct")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
}
