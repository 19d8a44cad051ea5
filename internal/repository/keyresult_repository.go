package repository

import (
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"gorm.io/gorm"
)

var keyResultListDef = listDefinition{
	orderFields: map[string]string{
		"id":            "id",
		"name":          "name",
		"description":   "description",
		"target_value":  "target_value",
		"current_value": "current_value",
	},
	filterFields: map[string]string{
		"name":        "name",
		"description": "description",
	},
	defaultOrder: "name",
}

// GormKeyResultRepository is a GORM implementation of KeyResultRepository.
type GormKeyResultRepository struct {
	db *gorm.DB
}

// NewKeyResultRepository creates a new KeyResultRepository.
func NewKeyResultRepository(db *gorm.DB) KeyResultRepository {
	return &GormKeyResultRepository{db: db}
}

func (r *GormKeyResultRepository) Create(kr *models.KeyResult) error {
	return r.db.Create(kr).Error
}

func (r *GormKeyResultRepository) FindByID(id uint64, preload ...string) (*models.KeyResult, error) {
	var kr models.KeyResult
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&kr, id).Error; err != nil {
		return nil, err
	}
	return &kr, nil
}

func (r *GormKeyResultRepository) List(params ListParams) ([]models.KeyResult, int64, error) {
	return listEntities[models.KeyResult](r.db, keyResultListDef, params, "Objective")
}

func (r *GormKeyResultRepository) Update(kr *models.KeyResult) error {
	return r.db.Save(kr).Error
}

func (r *GormKeyResultRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("key_result_id = ?", id).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("key_result_id = ?", id).Delete(&models.RecurringSchedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.KeyResult{}, id).Error
	})
}

func (r *GormKeyResultRepository) ObjectiveExists(objectiveID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Objective{}).Where("id = ?", objectiveID).Count(&count).Error
	return count > 0, err
}
