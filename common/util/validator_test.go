package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/quick-cert-api/type/payload"
)

type StoreConfig struct {
	Store   string `validate:"required,oneof=mongo postgres"`
	Verify  string `validate:"omitempty,url"`
	Retries int    `validate:"min=1,max=5"`
}

// TestValidateStruct_VerifyPayload tests the verification body rules
func TestValidateStruct_VerifyPayload(t *testing.T) {
	assert.NoError(t, ValidateStruct(payload.VerifyCertificatePayload{CertId: "CERT-0A1B2C3D"}))

	err := ValidateStruct(payload.VerifyCertificatePayload{})
	require.Error(t, err)
	assert.Equal(t, []string{"CertId is required"}, GetValidationErrors(err))
}

// TestValidateStruct_ChatbotPayload tests the chatbot body rules
func TestValidateStruct_ChatbotPayload(t *testing.T) {
	assert.NoError(t, ValidateStruct(payload.ChatbotPayload{Message: "hello"}))
	assert.Error(t, ValidateStruct(payload.ChatbotPayload{}))
}

// TestValidateStruct_GeneratePayload tests that only the optional email is checked
func TestValidateStruct_GeneratePayload(t *testing.T) {
	assert.NoError(t, ValidateStruct(payload.GenerateCertificatePayload{}), "all generation fields are optional")
	assert.NoError(t, ValidateStruct(payload.GenerateCertificatePayload{Email: "jane@example.com"}))

	err := ValidateStruct(payload.GenerateCertificatePayload{Email: "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, []string{"Email must be a valid email"}, GetValidationErrors(err))
}

// TestGetValidationErrors_Messages tests message formatting per tag
func TestGetValidationErrors_Messages(t *testing.T) {
	testCases := []struct {
		name   string
		input  StoreConfig
		expect []string
	}{
		{
			name:   "oneof",
			input:  StoreConfig{Store: "redis", Retries: 1},
			expect: []string{"Store must be one of: mongo postgres"},
		},
		{
			name:   "url",
			input:  StoreConfig{Store: "mongo", Verify: "not a url", Retries: 1},
			expect: []string{"Verify must be a valid URL"},
		},
		{
			name:   "min and required",
			input:  StoreConfig{},
			expect: []string{"Store is required", "Retries must be at least 1"},
		},
		{
			name:   "max",
			input:  StoreConfig{Store: "postgres", Retries: 9},
			expect: []string{"Retries must be at most 5"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(tc.input)
			require.Error(t, err)
			assert.Equal(t, tc.expect, GetValidationErrors(err))
		})
	}
}

// TestGetValidationErrors_NonValidationError tests that foreign errors yield nothing
func TestGetValidationErrors_NonValidationError(t *testing.T) {
	assert.Empty(t, GetValidationErrors(errors.New("plain")))
}
