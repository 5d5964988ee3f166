package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `validate:"required"`
	Code  string  `validate:"required,min=3,max=10"`
	Price float64 `validate:"required,gt=0"`
	Limit int     `validate:"lte=100"`
}

func TestValidatePasses(t *testing.T) {
	assert.NoError(t, Validate(sample{Name: "Widget", Code: "W-1000", Price: 9.99, Limit: 50}))
}

func TestValidateReportsAllFailuresTogether(t *testing.T) {
	err := Validate(sample{Limit: 200})

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))

	fields := valErr.Fields()
	assert.Len(t, fields, 4, "every failing field is reported in one pass")
	assert.Equal(t, "is required", fields["Name"])
	assert.Equal(t, "must be greater than 0", fields["Price"])
	assert.Equal(t, "must be less than or equal to 100", fields["Limit"])
}

func TestValidateTagMessages(t *testing.T) {
	err := Validate(sample{Name: "x", Code: "ab", Price: 1})

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "must be at least 3 characters", valErr.Fields()["Code"])

	err = Validate(sample{Name: "x", Code: "abcdefghijk", Price: 1})
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "must be at most 10 characters", valErr.Fields()["Code"])
}

func TestValidationErrorString(t *testing.T) {
	err := Validate(sample{Name: "x", Code: "W-1", Price: 0})

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Contains(t, valErr.Error(), "Price")
}
