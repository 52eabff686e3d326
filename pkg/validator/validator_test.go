package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createRequest struct {
	ProductID string `validate:"required,uuid"`
	Quantity  int    `validate:"gte=0"`
	Threshold int    `validate:"omitempty,gt=0"`
	Role      string `validate:"omitempty,oneof=admin manager staff"`
}

func TestValidate_Success(t *testing.T) {
	req := createRequest{
		ProductID: "0b8c9d2e-3f4a-4b5c-8d6e-7f8a9b0c1d2e",
		Quantity:  5,
		Threshold: 10,
		Role:      "manager",
	}
	assert.NoError(t, Validate(req))
}

func TestValidate_RequiredField(t *testing.T) {
	err := Validate(createRequest{Quantity: 1})
	require.Error(t, err)

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "is required", valErr.Fields()["ProductID"])
}

func TestValidate_GTE(t *testing.T) {
	err := Validate(createRequest{
		ProductID: "0b8c9d2e-3f4a-4b5c-8d6e-7f8a9b0c1d2e",
		Quantity:  -1,
	})
	require.Error(t, err)

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Contains(t, valErr.Fields()["Quantity"], "greater than or equal to 0")
}

func TestValidate_OneOf(t *testing.T) {
	err := Validate(createRequest{
		ProductID: "0b8c9d2e-3f4a-4b5c-8d6e-7f8a9b0c1d2e",
		Role:      "superuser",
	})
	require.Error(t, err)

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Contains(t, valErr.Fields()["Role"], "must be one of")
}

func TestValidationError_MessageListsAllFields(t *testing.T) {
	err := Validate(createRequest{Quantity: -5, Role: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ProductID")
	assert.Contains(t, err.Error(), "Quantity")
	assert.Contains(t, err.Error(), "Role")
}
