package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutForm struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
}

func TestDecodeAndValidate_ValidBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/checkout",
		strings.NewReader(`{"email":"jamie@example.com","first_name":"Jamie"}`))

	var form checkoutForm
	require.NoError(t, DecodeAndValidate(r, &form))
	assert.Equal(t, "jamie@example.com", form.Email)
}

func TestDecodeAndValidate_MalformedJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/checkout", strings.NewReader(`{`))

	var form checkoutForm
	err := DecodeAndValidate(r, &form)
	require.Error(t, err)
	assert.Empty(t, FormatValidationErrors(err))
}

func TestDecodeAndValidate_MissingRequiredFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/checkout", strings.NewReader(`{"email":"not-an-email"}`))

	var form checkoutForm
	err := DecodeAndValidate(r, &form)
	require.Error(t, err)

	fieldErrors := FormatValidationErrors(err)
	require.Len(t, fieldErrors, 2)

	byField := map[string]string{}
	for _, fe := range fieldErrors {
		byField[fe.Field] = fe.Message
	}
	assert.Equal(t, "Invalid email format", byField["Email"])
	assert.Equal(t, "This field is required", byField["FirstName"])
}
