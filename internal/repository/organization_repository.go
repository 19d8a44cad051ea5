package repository

import (
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"gorm.io/gorm"
)

var organizationListDef = listDefinition{
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

// GormOrganizationRepository is a GORM implementation of OrganizationRepository.
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new OrganizationRepository.
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

func (r *GormOrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

func (r *GormOrganizationRepository) FindByID(id uint64) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.First(&org, id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *GormOrganizationRepository) List(params ListParams) ([]models.Organization, int64, error) {
	return listEntities[models.Organization](r.db, organizationListDef, params)
}

func (r *GormOrganizationRepository) Update(org *models.Organization) error {
	return r.db.Save(org).Error
}

func (r *GormOrganizationRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", id).Delete(&models.UserOrganization{}).Error; err != nil {
			return err
		}
		if err := tx.Where("organization_id = ?", id).Delete(&models.GroupOrganization{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Organization{}, id).Error
	})
}
