package repository

import (
	"errors"
	"fmt"

	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormReactionRepository is a GORM implementation of ReactionRepository.
type GormReactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a new ReactionRepository.
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &GormReactionRepository{db: db}
}

// Find returns the matching reaction, or nil when none exists.
func (r *GormReactionRepository) Find(keyResultID, userID uint64, emoji string) (*models.Reaction, error) {
	var reaction models.Reaction
	err := r.db.
		Where("key_result_id = ? AND user_id = ? AND emoji = ?", keyResultID, userID, emoji).
		First(&reaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

func (r *GormReactionRepository) Add(keyResultID, userID uint64, emoji string) (*models.Reaction, error) {
	if err := r.keyResultExists(keyResultID); err != nil {
		return nil, err
	}
	if err := r.userExists(userID); err != nil {
		return nil, err
	}
	reaction := &models.Reaction{
		KeyResultID: keyResultID,
		UserID:      userID,
		Emoji:       emoji,
	}
	if err := r.db.Create(reaction).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("User has already reacted with this emoji", map[string]interface{}{
				"key_result_id": keyResultID,
				"user_id":       userID,
				"emoji":         emoji,
			})
		}
		return nil, err
	}
	return reaction, nil
}

func (r *GormReactionRepository) Remove(keyResultID, userID uint64, emoji string) error {
	result := r.db.
		Where("key_result_id = ? AND user_id = ? AND emoji = ?", keyResultID, userID, emoji).
		Delete(&models.Reaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Reaction",
			fmt.Sprintf("kr:%d-user:%d-%s", keyResultID, userID, emoji))
	}
	return nil
}

func (r *GormReactionRepository) ListForKeyResult(keyResultID uint64) ([]models.Reaction, error) {
	if err := r.keyResultExists(keyResultID); err != nil {
		return nil, err
	}
	var reactions []models.Reaction
	err := r.db.Preload("User").
		Where("key_result_id = ?", keyResultID).
		Order("created_at").
		Find(&reactions).Error
	return reactions, err
}

func (r *GormReactionRepository) keyResultExists(id uint64) error {
	var count int64
	if err := r.db.Model(&models.KeyResult{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperrors.NotFound("KeyResult", id)
	}
	return nil
}

func (r *GormReactionRepository) userExists(id uint64) error {
	var count int64
	if err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperrors.NotFound("User", id)
	}
	return nil
}
