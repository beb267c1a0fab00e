package custom_errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"blog-service/internal/custom_errors"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want custom_errors.Kind
	}{
		{name: "not found sentinel", err: custom_errors.ErrUserNotFound, want: custom_errors.KindNotFound},
		{name: "wrapped duplicate", err: fmt.Errorf("create: %w", custom_errors.ErrEmailExists), want: custom_errors.KindDuplicateKey},
		{name: "reference", err: custom_errors.ErrAuthorNotFound, want: custom_errors.KindReferenceNotFound},
		{name: "invalid id", err: custom_errors.ErrInvalidPostID, want: custom_errors.KindInvalidIdentifier},
		{name: "validation", err: custom_errors.NewValidation(nil), want: custom_errors.KindValidationFailed},
		{name: "foreign error", err: errors.New("connection reset"), want: custom_errors.KindPersistence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, custom_errors.KindOf(tt.err))
		})
	}
}

func TestError_WrapKeepsIdentity(t *testing.T) {
	cause := errors.New("unique_violation")
	err := custom_errors.ErrEmailExists.Wrap(cause)

	assert.True(t, errors.Is(err, custom_errors.ErrEmailExists))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, custom_errors.ErrUserNotFound))
	assert.Equal(t, "Email already exists: unique_violation", err.Error())
}

func TestDetailsOf(t *testing.T) {
	details := []custom_errors.FieldViolation{
		{Field: "email", Rule: "email", Message: "Invalid email format"},
	}
	err := fmt.Errorf("validate: %w", custom_errors.NewValidation(details))

	assert.Equal(t, details, custom_errors.DetailsOf(err))
	assert.Nil(t, custom_errors.DetailsOf(custom_errors.ErrPostNotFound))
	assert.Equal(t, "Validation failed", custom_errors.NewValidation(details).Error())
}
