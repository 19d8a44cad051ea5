package repository

import (
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"gorm.io/gorm"
)

var groupListDef = listDefinition{
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

// GormGroupRepository is a GORM implementation of GroupRepository.
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new GroupRepository.
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &GormGroupRepository{db: db}
}

func (r *GormGroupRepository) Create(group *models.Group) error {
	return r.db.Create(group).Error
}

func (r *GormGroupRepository) FindByID(id uint64) (*models.Group, error) {
	var group models.Group
	err := r.db.
		Preload("Parent").
		Preload("Children").
		Preload("Owner").
		First(&group, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GormGroupRepository) List(params ListParams) ([]models.Group, int64, error) {
	return listEntities[models.Group](r.db, groupListDef, params, "Parent", "Children", "Owner")
}

// Update persists the group, including parent reassignment. Cycle detection
// is intentionally absent: reparenting a group under one of its own
// descendants is accepted, matching observed behavior.
func (r *GormGroupRepository) Update(group *models.Group) error {
	return r.db.Save(group).Error
}

func (r *GormGroupRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Children keep existing with a null parent rather than cascading.
		if err := tx.Model(&models.Group{}).Where("parent_id = ?", id).
			Update("parent_id", nil).Error; err != nil {
			return err
		}
		for _, edge := range []interface{}{
			&models.GroupOrganization{},
			&models.UserGroup{},
			&models.GroupRole{},
			&models.GroupDelegate{},
			&models.GroupStreak{},
		} {
			if err := tx.Where("group_id = ?", id).Delete(edge).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Group{}, id).Error
	})
}
