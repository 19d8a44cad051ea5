package repository

import (
	"errors"
	"time"

	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormStreakRepository is a GORM implementation of StreakRepository.
type GormStreakRepository struct {
	db *gorm.DB
}

// NewStreakRepository creates a new StreakRepository.
func NewStreakRepository(db *gorm.DB) StreakRepository {
	return &GormStreakRepository{db: db}
}

// GetOrCreate returns the group's streak row, creating a zeroed one on first
// access.
func (r *GormStreakRepository) GetOrCreate(groupID uint64) (*models.GroupStreak, error) {
	var count int64
	if err := r.db.Model(&models.Group{}).Where("id = ?", groupID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.NotFound("Group", groupID)
	}

	var streak models.GroupStreak
	err := r.db.Where("group_id = ?", groupID).First(&streak).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		streak = models.GroupStreak{GroupID: groupID}
		if err := r.db.Create(&streak).Error; err != nil {
			// Lost a race to another creator; read theirs.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				if err := r.db.Where("group_id = ?", groupID).First(&streak).Error; err != nil {
					return nil, err
				}
				return &streak, nil
			}
			return nil, err
		}
		return &streak, nil
	}
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

func (r *GormStreakRepository) Save(streak *models.GroupStreak) error {
	return r.db.Save(streak).Error
}

func (r *GormStreakRepository) FindStale(cutoff time.Time) ([]models.GroupStreak, error) {
	var streaks []models.GroupStreak
	err := r.db.
		Where("current_streak > 0 AND last_activity_date < ?", cutoff).
		Order("group_id").
		Find(&streaks).Error
	return streaks, err
}
