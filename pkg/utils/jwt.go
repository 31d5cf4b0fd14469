package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType discriminates what a token may be used for. A token is only
// accepted by the operation matching its type.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

var (
	// ErrTokenMalformed covers unparsable input, bad signatures and
	// unexpected signing methods.
	ErrTokenMalformed = errors.New("token is malformed or badly signed")
	// ErrTokenExpired means the token was structurally valid but past its
	// embedded expiry.
	ErrTokenExpired = errors.New("token has expired")
)

// Claims represents JWT custom claims
type Claims struct {
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies tokens with a symmetric secret. Its
// configuration is fixed at construction and immutable for the process
// lifetime.
type JWTManager struct {
	secret        []byte
	method        jwt.SigningMethod
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewJWTManager builds a token manager from the startup configuration.
// Only symmetric (HMAC) algorithms are supported.
func NewJWTManager(secret, algorithm string, accessExpiry, refreshExpiry time.Duration) (*JWTManager, error) {
	if secret == "" {
		return nil, errors.New("signing secret must not be empty")
	}
	if accessExpiry <= 0 || refreshExpiry <= 0 {
		return nil, errors.New("token expiry durations must be positive")
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not symmetric", algorithm)
	}

	return &JWTManager{
		secret:        []byte(secret),
		method:        method,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}, nil
}

// IssueAccessToken issues a short-lived access token for the subject
func (m *JWTManager) IssueAccessToken(subject string) (string, error) {
	return m.Issue(subject, TokenTypeAccess, m.accessExpiry)
}

// IssueRefreshToken issues a long-lived refresh token for the subject
func (m *JWTManager) IssueRefreshToken(subject string) (string, error) {
	return m.Issue(subject, TokenTypeRefresh, m.refreshExpiry)
}

// Issue creates a signed token carrying the subject, a type tag and an
// absolute expiry of now + ttl
func (m *JWTManager) Issue(subject string, tokenType TokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(m.method, claims)
	return token.SignedString(m.secret)
}

// Decode verifies the signature and expiry of a token and returns its
// claims. It never mutates state: a successful decode alone does not make
// a token trustworthy, revocation is checked separately.
func (m *JWTManager) Decode(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}

// HashToken returns the SHA-256 hex digest of a raw token string.
// Revocation records are keyed by this digest, so input of any length is
// storable and membership tests stay exact.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// TokenExpiry extracts the embedded expiry without verifying the
// signature. Returns nil for anything that does not parse. Used only to
// annotate revocation records, never to trust a token.
func TokenExpiry(tokenString string) *time.Time {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, &Claims{})
	if err != nil {
		return nil
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.ExpiresAt == nil {
		return nil
	}

	expiry := claims.ExpiresAt.Time
	return &expiry
}
