package models

import "time"

// User represents the users table
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	FullName     string    `gorm:"size:100" json:"full_name,omitempty"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	Disabled     bool      `gorm:"default:false" json:"disabled"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// RevokedToken represents the revoked_tokens table. Entries are append-only:
// once a token lands here it is never honored again, regardless of its
// embedded expiry. Rows are keyed by a SHA-256 digest of the raw token so
// input of any length fits the column. ExpiresAt is recorded best-effort so
// expired rows can be garbage-collected later.
type RevokedToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	TokenHash string     `gorm:"uniqueIndex;not null;size:64" json:"-"`
	ExpiresAt *time.Time `gorm:"index" json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName specifies the table name for RevokedToken model
func (RevokedToken) TableName() string {
	return "revoked_tokens"
}
