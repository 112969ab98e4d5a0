package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyConversion(t *testing.T) {
	tests := []struct {
		domain string
		wire   string
	}{
		{"id", "id"},
		{"amount", "amount"},
		{"tax_id", "taxId"},
		{"return_url", "returnUrl"},
		{"completion_url", "completionUrl"},
		{"external_id", "externalId"},
		{"dev_mode", "devMode"},
		{"br_code", "brCode"},
		{"br_code_base64", "brCodeBase64"},
		{"platform_fee", "platformFee"},
		{"expires_in", "expiresIn"},
		{"created_at", "createdAt"},
	}

	for _, tc := range tests {
		t.Run(tc.domain, func(t *testing.T) {
			assert.Equal(t, tc.wire, ToWireKey(tc.domain))
			assert.Equal(t, tc.domain, ToDomainKey(tc.wire))
			assert.Equal(t, tc.domain, ToDomainKey(ToWireKey(tc.domain)))
			assert.Equal(t, tc.wire, ToWireKey(ToDomainKey(tc.wire)))
		})
	}
}

func TestToDomainKeyKeepsSnakeCase(t *testing.T) {
	assert.Equal(t, "tax_id", ToDomainKey("tax_id"))
	assert.Equal(t, "br_code_base64", ToDomainKey("br_code_base64"))
}

func TestKeyConversionIdentityFallback(t *testing.T) {
	tests := []string{"_private", "a__b", "trailing_", "snake_1x"}

	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			assert.Equal(t, key, ToWireKey(key))
			assert.Equal(t, key, ToDomainKey(key))
		})
	}
}

func TestToDomainKeyLowersLeadingCapital(t *testing.T) {
	assert.Equal(t, "amount", ToDomainKey("Amount"))
	assert.Equal(t, "tax_id", ToDomainKey("TaxId"))
}
