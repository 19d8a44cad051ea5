package repository

import (
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"gorm.io/gorm"
)

var objectiveListDef = listDefinition{
	orderFields: map[string]string{
		"id":          "id",
		"name":        "name",
		"description": "description",
	},
	filterFields: map[string]string{
		"name":        "name",
		"description": "description",
	},
	defaultOrder: "name",
}

// GormObjectiveRepository is a GORM implementation of ObjectiveRepository.
type GormObjectiveRepository struct {
	db *gorm.DB
}

// NewObjectiveRepository creates a new ObjectiveRepository.
func NewObjectiveRepository(db *gorm.DB) ObjectiveRepository {
	return &GormObjectiveRepository{db: db}
}

func (r *GormObjectiveRepository) Create(objective *models.Objective) error {
	return r.db.Create(objective).Error
}

func (r *GormObjectiveRepository) FindByID(id uint64, preload ...string) (*models.Objective, error) {
	var objective models.Objective
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&objective, id).Error; err != nil {
		return nil, err
	}
	return &objective, nil
}

func (r *GormObjectiveRepository) List(params ListParams) ([]models.Objective, int64, error) {
	return listEntities[models.Objective](r.db, objectiveListDef, params, "KeyResults")
}

func (r *GormObjectiveRepository) Update(objective *models.Objective) error {
	return r.db.Save(objective).Error
}

func (r *GormObjectiveRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var krIDs []uint64
		if err := tx.Model(&models.KeyResult{}).Where("objective_id = ?", id).
			Pluck("id", &krIDs).Error; err != nil {
			return err
		}
		if len(krIDs) > 0 {
			if err := tx.Where("key_result_id IN ?", krIDs).Delete(&models.Reaction{}).Error; err != nil {
				return err
			}
			if err := tx.Where("key_result_id IN ?", krIDs).Delete(&models.RecurringSchedule{}).Error; err != nil {
				return err
			}
			if err := tx.Where("objective_id = ?", id).Delete(&models.KeyResult{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("objective_id = ?", id).Delete(&models.ObjectiveOwnership{}).Error; err != nil {
			return err
		}
		if err := tx.Where("objective_id = ?", id).Delete(&models.GroupCascadedObjective{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Objective{}, id).Error
	})
}
