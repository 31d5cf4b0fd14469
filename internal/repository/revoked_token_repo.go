package repository

import (
	"time"

	"job-board-backend/internal/models"
	"job-board-backend/pkg/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RevokedTokenRepository struct {
	db *gorm.DB
}

func NewRevokedTokenRepo(db *gorm.DB) *RevokedTokenRepository {
	return &RevokedTokenRepository{db: db}
}

// Revoke records a raw token string as revoked, keyed by its SHA-256
// digest so arbitrarily long input is accepted. Idempotent: revoking an
// already-revoked token is a no-op, not an error. expiresAt may be nil
// when the token carries no readable expiry.
func (r *RevokedTokenRepository) Revoke(token string, expiresAt *time.Time) error {
	record := &models.RevokedToken{
		TokenHash: utils.HashToken(token),
		ExpiresAt: expiresAt,
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(record).Error
}

// IsRevoked reports whether the exact token string has been revoked. The
// membership test uses the same digest derivation as Revoke.
func (r *RevokedTokenRepository) IsRevoked(token string) (bool, error) {
	var count int64
	err := r.db.Model(&models.RevokedToken{}).
		Where("token_hash = ?", utils.HashToken(token)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
