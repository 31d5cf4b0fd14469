package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("Abcdef1!")
	require.NoError(t, err)

	assert.True(t, ComparePassword(hash, "Abcdef1!"))
	assert.False(t, ComparePassword(hash, "Abcdef1?"))
}

func TestHashPassword_SaltRandomization(t *testing.T) {
	first, err := HashPassword("Abcdef1!")
	require.NoError(t, err)
	second, err := HashPassword("Abcdef1!")
	require.NoError(t, err)

	// Same password, different salts, different hashes; both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, ComparePassword(first, "Abcdef1!"))
	assert.True(t, ComparePassword(second, "Abcdef1!"))
}

func TestComparePassword_MalformedHash(t *testing.T) {
	assert.False(t, ComparePassword("not-a-bcrypt-hash", "Abcdef1!"))
	assert.False(t, ComparePassword("", "Abcdef1!"))
}

func TestValidatePasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "valid", password: "Abcdef1!"},
		{name: "valid multibyte", password: "Aa1!éééé"},
		{name: "too short", password: "short1", wantErr: "at least 8 characters"},
		{name: "too short multibyte", password: "Aa1!ééé", wantErr: "at least 8 characters"},
		{name: "missing digit", password: "Abcdefg!", wantErr: "one digit"},
		{name: "missing uppercase", password: "abcdef1!", wantErr: "one uppercase"},
		{name: "missing lowercase", password: "ABCDEF1!", wantErr: "one lowercase"},
		{name: "missing symbol", password: "Abcdefg1", wantErr: "one symbol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordPolicy(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
