package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret        = "test-secret"
	testAccessExpiry  = 15 * time.Minute
	testRefreshExpiry = 7 * 24 * time.Hour
)

func newTestManager(t *testing.T) *JWTManager {
	t.Helper()
	m, err := NewJWTManager(testSecret, "HS256", testAccessExpiry, testRefreshExpiry)
	require.NoError(t, err)
	return m
}

func TestNewJWTManager_InvalidConfig(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		algorithm string
	}{
		{name: "empty secret", secret: "", algorithm: "HS256"},
		{name: "unknown algorithm", secret: "s", algorithm: "bogus"},
		{name: "asymmetric algorithm", secret: "s", algorithm: "RS256"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewJWTManager(tt.secret, tt.algorithm, testAccessExpiry, testRefreshExpiry)
			assert.Error(t, err)
		})
	}
}

func TestNewJWTManager_NonPositiveExpiry(t *testing.T) {
	_, err := NewJWTManager(testSecret, "HS256", 0, testRefreshExpiry)
	assert.Error(t, err)
}

func TestIssueAndDecode_AccessToken(t *testing.T) {
	m := newTestManager(t)

	token, err := m.IssueAccessToken("alice")
	require.NoError(t, err)

	claims, err := m.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(testAccessExpiry), claims.ExpiresAt.Time, 5*time.Second)
}

func TestIssueAndDecode_RefreshToken(t *testing.T) {
	m := newTestManager(t)

	token, err := m.IssueRefreshToken("alice")
	require.NoError(t, err)

	claims, err := m.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	assert.WithinDuration(t, time.Now().Add(testRefreshExpiry), claims.ExpiresAt.Time, 5*time.Second)
}

func TestIssue_DistinctTokenIDs(t *testing.T) {
	m := newTestManager(t)

	first, err := m.IssueAccessToken("alice")
	require.NoError(t, err)
	second, err := m.IssueAccessToken("alice")
	require.NoError(t, err)

	firstClaims, err := m.Decode(first)
	require.NoError(t, err)
	secondClaims, err := m.Decode(second)
	require.NoError(t, err)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestDecode_Expired(t *testing.T) {
	m := newTestManager(t)

	token, err := m.Issue("alice", TokenTypeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = m.Decode(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestDecode_WrongSecret(t *testing.T) {
	m := newTestManager(t)
	other, err := NewJWTManager("other-secret", "HS256", testAccessExpiry, testRefreshExpiry)
	require.NoError(t, err)

	token, err := other.IssueAccessToken("alice")
	require.NoError(t, err)

	_, err = m.Decode(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestDecode_Garbage(t *testing.T) {
	m := newTestManager(t)

	for _, input := range []string{"", "garbage", "a.b.c"} {
		_, err := m.Decode(input)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input %q", input)
	}
}

func TestHashToken(t *testing.T) {
	// The digest is a fixed-width key regardless of input length, so even
	// oversized garbage fits the revocation column.
	oversized := strings.Repeat("x", 600)
	digest := HashToken(oversized)
	assert.Len(t, digest, 64)

	assert.Equal(t, digest, HashToken(oversized))
	assert.NotEqual(t, digest, HashToken(oversized+"y"))
	assert.Len(t, HashToken(""), 64)
}

func TestTokenExpiry(t *testing.T) {
	m := newTestManager(t)

	// Expiry is readable even from an expired token.
	token, err := m.Issue("alice", TokenTypeAccess, -time.Minute)
	require.NoError(t, err)

	expiry := TokenExpiry(token)
	require.NotNil(t, expiry)
	assert.WithinDuration(t, time.Now().Add(-time.Minute), *expiry, 5*time.Second)

	assert.Nil(t, TokenExpiry("garbage"))
}
