package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReferralCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := GenerateReferralCode()

		assert.Len(t, code, ReferralCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(referralAlphabet, r),
				"unexpected character %q in code %s", r, code)
		}
		seen[code] = true
	}

	// Not a uniqueness guarantee, but 50 identical codes means a broken generator
	assert.Greater(t, len(seen), 1)
}

func TestGenerateOTP(t *testing.T) {
	tests := []struct {
		name        string
		length      int
		expectedLen int
	}{
		{
			name:        "Standard six digit code",
			length:      6,
			expectedLen: 6,
		},
		{
			name:        "Minimum four digit code",
			length:      4,
			expectedLen: 4,
		},
		{
			name:        "Below minimum is clamped",
			length:      2,
			expectedLen: 4,
		},
		{
			name:        "Zero is clamped",
			length:      0,
			expectedLen: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			otp := GenerateOTP(tt.length)

			assert.Len(t, otp, tt.expectedLen)
			// Leading zero would shorten the printed code
			assert.NotEqual(t, byte('0'), otp[0])
			for _, r := range otp {
				assert.True(t, r >= '0' && r <= '9', "non-digit %q in otp %s", r, otp)
			}
		})
	}
}
