package repository

import (
	"github.com/tmori/task-manager-api/internal/models"
	"gorm.io/gorm"
)

// GormTokenRepository is a GORM implementation of TokenRepository
type GormTokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &GormTokenRepository{db: db}
}

// Create persists a new access token
func (r *GormTokenRepository) Create(token *models.AccessToken) error {
	return r.db.Create(token).Error
}

// FindUserByHash resolves a token digest to its owning user
func (r *GormTokenRepository) FindUserByHash(hash string) (*models.User, error) {
	var token models.AccessToken
	if err := r.db.Preload("User").Where("token_hash = ?", hash).First(&token).Error; err != nil {
		return nil, err
	}
	return &token.User, nil
}

// DeleteByUser deletes every token belonging to a user
func (r *GormTokenRepository) DeleteByUser(userID uint64) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.AccessToken{}).Error
}
