package repository

import (
	"errors"
	"fmt"

	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormOwnershipRepository is a GORM implementation of OwnershipRepository.
type GormOwnershipRepository struct {
	db *gorm.DB
}

// NewOwnershipRepository creates a new OwnershipRepository.
func NewOwnershipRepository(db *gorm.DB) OwnershipRepository {
	return &GormOwnershipRepository{db: db}
}

func (r *GormOwnershipRepository) AddOwnership(objectiveID uint64, ownerType models.OwnerType, ownerID uint64) (*models.ObjectiveOwnership, error) {
	if !ownerType.Valid() {
		return nil, apperrors.Validation(
			fmt.Sprintf("owner_type must be one of: %s, %s, %s",
				models.OwnerTypeUser, models.OwnerTypeRole, models.OwnerTypeGroup),
			"owner_type", string(ownerType),
		)
	}
	if err := r.objectiveExists(objectiveID); err != nil {
		return nil, err
	}
	if err := r.ownerExists(ownerType, ownerID); err != nil {
		return nil, err
	}

	var count int64
	err := r.db.Model(&models.ObjectiveOwnership{}).
		Where("objective_id = ? AND owner_type = ? AND owner_id = ?", objectiveID, ownerType, ownerID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.Conflict("This owner is already assigned to the objective", map[string]interface{}{
			"objective_id": objectiveID,
			"owner_type":   string(ownerType),
			"owner_id":     ownerID,
		})
	}

	ownership := &models.ObjectiveOwnership{
		ObjectiveID: objectiveID,
		OwnerType:   ownerType,
		OwnerID:     ownerID,
	}
	if err := r.db.Create(ownership).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("This owner is already assigned to the objective", nil)
		}
		return nil, err
	}
	return ownership, nil
}

func (r *GormOwnershipRepository) RemoveOwnership(objectiveID uint64, ownerType models.OwnerType, ownerID uint64) error {
	result := r.db.
		Where("objective_id = ? AND owner_type = ? AND owner_id = ?", objectiveID, ownerType, ownerID).
		Delete(&models.ObjectiveOwnership{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Ownership",
			fmt.Sprintf("obj:%d-%s:%d", objectiveID, ownerType, ownerID))
	}
	return nil
}

func (r *GormOwnershipRepository) GetObjectiveOwnerships(objectiveID uint64) ([]models.ObjectiveOwnership, error) {
	if err := r.objectiveExists(objectiveID); err != nil {
		return nil, err
	}
	var ownerships []models.ObjectiveOwnership
	err := r.db.Where("objective_id = ?", objectiveID).Order("id").Find(&ownerships).Error
	return ownerships, err
}

func (r *GormOwnershipRepository) GetOwnerName(ownerType models.OwnerType, ownerID uint64) (string, error) {
	var name string
	var err error
	switch ownerType {
	case models.OwnerTypeUser:
		err = r.db.Model(&models.User{}).Where("id = ?", ownerID).Pluck("name", &name).Error
	case models.OwnerTypeRole:
		err = r.db.Model(&models.Role{}).Where("id = ?", ownerID).Pluck("name", &name).Error
	case models.OwnerTypeGroup:
		err = r.db.Model(&models.Group{}).Where("id = ?", ownerID).Pluck("name", &name).Error
	default:
		return "", apperrors.Validation("unknown owner type", "owner_type", string(ownerType))
	}
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", apperrors.NotFound(ownerType.Resource(), ownerID)
	}
	return name, nil
}

// GetOwnerNames resolves display names for a batch of ownerships with one
// query per owner type. Owners that no longer exist are simply absent from
// the result map.
func (r *GormOwnershipRepository) GetOwnerNames(ownerships []models.ObjectiveOwnership) (map[OwnerKey]string, error) {
	idsByType := map[models.OwnerType][]uint64{}
	for _, o := range ownerships {
		idsByType[o.OwnerType] = append(idsByType[o.OwnerType], o.OwnerID)
	}

	names := make(map[OwnerKey]string, len(ownerships))
	collect := func(model interface{}, ownerType models.OwnerType) error {
		ids := idsByType[ownerType]
		if len(ids) == 0 {
			return nil
		}
		var rows []struct {
			ID   uint64
			Name string
		}
		if err := r.db.Model(model).Select("id", "name").Where("id IN ?", ids).Scan(&rows).Error; err != nil {
			return err
		}
		for _, row := range rows {
			names[OwnerKey{Type: ownerType, ID: row.ID}] = row.Name
		}
		return nil
	}

	if err := collect(&models.User{}, models.OwnerTypeUser); err != nil {
		return nil, err
	}
	if err := collect(&models.Role{}, models.OwnerTypeRole); err != nil {
		return nil, err
	}
	if err := collect(&models.Group{}, models.OwnerTypeGroup); err != nil {
		return nil, err
	}
	return names, nil
}

func (r *GormOwnershipRepository) GetUserObjectives(userID uint64) (*UserAssignments, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.NotFound("User", userID)
	}

	var roleIDs []uint64
	if err := r.db.Model(&models.UserRole{}).Where("user_id = ?", userID).
		Pluck("role_id", &roleIDs).Error; err != nil {
		return nil, err
	}
	var groupIDs []uint64
	if err := r.db.Model(&models.UserGroup{}).Where("user_id = ?", userID).
		Pluck("group_id", &groupIDs).Error; err != nil {
		return nil, err
	}

	// Only add the role/group branches when the user actually has any, so an
	// empty id set never reaches the query.
	query := r.db.Where("owner_type = ? AND owner_id = ?", models.OwnerTypeUser, userID)
	if len(roleIDs) > 0 {
		query = query.Or("owner_type = ? AND owner_id IN ?", models.OwnerTypeRole, roleIDs)
	}
	if len(groupIDs) > 0 {
		query = query.Or("owner_type = ? AND owner_id IN ?", models.OwnerTypeGroup, groupIDs)
	}

	var ownerships []models.ObjectiveOwnership
	if err := r.db.Where(query).Order("id").Find(&ownerships).Error; err != nil {
		return nil, err
	}

	result := &UserAssignments{
		Objectives: []models.Objective{},
		DirectIDs:  map[uint64]bool{},
		ByRole:     map[uint64][]string{},
		ByGroup:    map[uint64][]string{},
	}
	if len(ownerships) == 0 {
		return result, nil
	}

	names, err := r.GetOwnerNames(ownerships)
	if err != nil {
		return nil, err
	}

	objectiveIDs := make([]uint64, 0, len(ownerships))
	seen := map[uint64]bool{}
	for _, o := range ownerships {
		if !seen[o.ObjectiveID] {
			seen[o.ObjectiveID] = true
			objectiveIDs = append(objectiveIDs, o.ObjectiveID)
		}
		name := names[OwnerKey{Type: o.OwnerType, ID: o.OwnerID}]
		switch o.OwnerType {
		case models.OwnerTypeUser:
			result.DirectIDs[o.ObjectiveID] = true
		case models.OwnerTypeRole:
			result.ByRole[o.ObjectiveID] = append(result.ByRole[o.ObjectiveID], name)
		case models.OwnerTypeGroup:
			result.ByGroup[o.ObjectiveID] = append(result.ByGroup[o.ObjectiveID], name)
		}
	}

	if err := r.db.Preload("KeyResults").Where("id IN ?", objectiveIDs).
		Order("id").Find(&result.Objectives).Error; err != nil {
		return nil, err
	}
	return result, nil
}

func (r *GormOwnershipRepository) objectiveExists(id uint64) error {
	var count int64
	if err := r.db.Model(&models.Objective{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperrors.NotFound("Objective", id)
	}
	return nil
}

func (r *GormOwnershipRepository) ownerExists(ownerType models.OwnerType, ownerID uint64) error {
	var model interface{}
	switch ownerType {
	case models.OwnerTypeUser:
		model = &models.User{}
	case models.OwnerTypeRole:
		model = &models.Role{}
	case models.OwnerTypeGroup:
		model = &models.Group{}
	}
	var count int64
	if err := r.db.Model(model).Where("id = ?", ownerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperrors.NotFound(ownerType.Resource(), ownerID)
	}
	return nil
}
