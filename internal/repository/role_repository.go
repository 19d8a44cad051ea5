package repository

import (
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"gorm.io/gorm"
)

var roleListDef = listDefinition{
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

// GormRoleRepository is a GORM implementation of RoleRepository.
type GormRoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new RoleRepository.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &GormRoleRepository{db: db}
}

func (r *GormRoleRepository) Create(role *models.Role) error {
	return r.db.Create(role).Error
}

func (r *GormRoleRepository) FindByID(id uint64) (*models.Role, error) {
	var role models.Role
	if err := r.db.First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *GormRoleRepository) List(params ListParams) ([]models.Role, int64, error) {
	return listEntities[models.Role](r.db, roleListDef, params)
}

func (r *GormRoleRepository) Update(role *models.Role) error {
	return r.db.Save(role).Error
}

func (r *GormRoleRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", id).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", id).Delete(&models.GroupRole{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Role{}, id).Error
	})
}
