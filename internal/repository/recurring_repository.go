package repository

import (
	"errors"
	"time"

	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormRecurringRepository is a GORM implementation of RecurringRepository.
type GormRecurringRepository struct {
	db *gorm.DB
}

// NewRecurringRepository creates a new RecurringRepository.
func NewRecurringRepository(db *gorm.DB) RecurringRepository {
	return &GormRecurringRepository{db: db}
}

func (r *GormRecurringRepository) Create(schedule *models.RecurringSchedule) error {
	var count int64
	err := r.db.Model(&models.KeyResult{}).
		Where("id = ?", schedule.KeyResultID).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return apperrors.NotFound("KeyResult", schedule.KeyResultID)
	}
	if err := r.db.Create(schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("Key result already has a recurring schedule", map[string]interface{}{
				"key_result_id": schedule.KeyResultID,
			})
		}
		return err
	}
	return nil
}

func (r *GormRecurringRepository) FindByKeyResult(keyResultID uint64) (*models.RecurringSchedule, error) {
	var schedule models.RecurringSchedule
	err := r.db.Where("key_result_id = ?", keyResultID).First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("RecurringSchedule", keyResultID)
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *GormRecurringRepository) Update(schedule *models.RecurringSchedule) error {
	return r.db.Save(schedule).Error
}

func (r *GormRecurringRepository) Delete(keyResultID uint64) error {
	result := r.db.Where("key_result_id = ?", keyResultID).Delete(&models.RecurringSchedule{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("RecurringSchedule", keyResultID)
	}
	return nil
}

func (r *GormRecurringRepository) FindDue(asOf time.Time) ([]models.RecurringSchedule, error) {
	var schedules []models.RecurringSchedule
	err := r.db.
		Preload("KeyResult").
		Preload("KeyResult.Objective").
		Where("next_due_date <= ?", asOf).
		Order("next_due_date").
		Find(&schedules).Error
	return schedules, err
}

func (r *GormRecurringRepository) All() ([]models.RecurringSchedule, error) {
	var schedules []models.RecurringSchedule
	err := r.db.Preload("KeyResult").Order("id").Find(&schedules).Error
	return schedules, err
}
