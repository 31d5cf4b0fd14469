package service

import "errors"

// Authentication failures are values, not exceptions. Handlers pass the
// message straight to the client, so the wording is part of the wire
// contract and must stay stable.
var (
	ErrInvalidCredentials = errors.New("Incorrect username or password")
	ErrInvalidToken       = errors.New("Could not validate credentials")
	ErrRevokedToken       = errors.New("Token has been revoked")
	ErrUnknownUser        = errors.New("User not found")
	ErrInactiveUser       = errors.New("Inactive user")
	ErrUsernameTaken      = errors.New("Username already exists")
)
