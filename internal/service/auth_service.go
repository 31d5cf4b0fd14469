package service

import (
	"errors"
	"fmt"
	"time"

	"job-board-backend/internal/models"
	"job-board-backend/internal/repository"
	"job-board-backend/pkg/utils"
)

// UserProvider resolves usernames to user records.
type UserProvider interface {
	FindByUsername(username string) (*models.User, error)
}

// RevocationStore is the durable blacklist of raw token strings.
type RevocationStore interface {
	Revoke(token string, expiresAt *time.Time) error
	IsRevoked(token string) (bool, error)
}

// AuditRecorder writes audit log entries.
type AuditRecorder interface {
	Record(userID *uint, action string, details string) error
}

// AuthService orchestrates login, logout, token refresh and bearer-token
// identity resolution.
type AuthService struct {
	users   UserProvider
	revoked RevocationStore
	audit   AuditRecorder
	tokens  *utils.JWTManager
}

func NewAuthService(users UserProvider, revoked RevocationStore, audit AuditRecorder, tokens *utils.JWTManager) *AuthService {
	return &AuthService{
		users:   users,
		revoked: revoked,
		audit:   audit,
		tokens:  tokens,
	}
}

// TokenPair is the result of a successful login
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login verifies credentials and issues an access/refresh token pair bound
// to the username. Unknown users and wrong passwords produce the identical
// error so usernames cannot be enumerated.
func (s *AuthService) Login(username, password string) (*TokenPair, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.IssueAccessToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refreshToken, err := s.tokens.IssueRefreshToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	_ = s.audit.Record(&user.ID, "user_login", fmt.Sprintf("User %s logged in", username))

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout unconditionally revokes the presented token string. It succeeds
// for expired, already-revoked or garbage input and therefore never leaks
// whether the token was valid. The embedded expiry is extracted without
// verification purely to annotate the revocation record.
func (s *AuthService) Logout(token string) error {
	return s.revoked.Revoke(token, utils.TokenExpiry(token))
}

// Refresh validates a refresh token and mints a new access token for its
// subject. The refresh token itself is not rotated: the caller keeps using
// the one it presented.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	revoked, err := s.revoked.IsRevoked(refreshToken)
	if err != nil {
		return "", err
	}
	if revoked {
		return "", ErrRevokedToken
	}

	claims, err := s.tokens.Decode(refreshToken)
	if err != nil {
		return "", ErrInvalidToken
	}
	if claims.TokenType != utils.TokenTypeRefresh {
		return "", ErrInvalidToken
	}

	user, err := s.users.FindByUsername(claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	if user.Disabled {
		return "", ErrInactiveUser
	}

	accessToken, err := s.tokens.IssueAccessToken(user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}

	return accessToken, nil
}

// ResolveIdentity turns a bearer token into the user it was issued to.
// The revocation check and decode must both pass, and only access tokens
// are accepted. The returned user may be disabled; callers that need an
// active user check the flag themselves.
func (s *AuthService) ResolveIdentity(bearerToken string) (*models.User, error) {
	revoked, err := s.revoked.IsRevoked(bearerToken)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrRevokedToken
	}

	claims, err := s.tokens.Decode(bearerToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != utils.TokenTypeAccess {
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByUsername(claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}

	return user, nil
}
