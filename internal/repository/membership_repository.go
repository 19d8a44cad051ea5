package repository

import (
	"errors"
	"fmt"

	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormMembershipRepository is a GORM implementation of MembershipRepository.
type GormMembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new MembershipRepository.
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &GormMembershipRepository{db: db}
}

// addEdge inserts a membership row after a duplicate pre-check. A
// duplicate-key violation at commit time is mapped to the same Conflict the
// pre-check produces: two concurrent adds may both pass the pre-check, and
// the store's constraint is the authoritative signal.
func (r *GormMembershipRepository) addEdge(edge interface{}, cond string, conflictMsg string, args ...interface{}) error {
	var count int64
	if err := r.db.Model(edge).Where(cond, args...).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperrors.Conflict(conflictMsg, nil)
	}
	if err := r.db.Create(edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict(conflictMsg, nil)
		}
		return err
	}
	return nil
}

// removeEdge deletes a membership row; absence of the edge is NotFound.
func (r *GormMembershipRepository) removeEdge(edge interface{}, cond string, resource, edgeID string, args ...interface{}) error {
	result := r.db.Where(cond, args...).Delete(edge)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(resource, edgeID)
	}
	return nil
}

// -------------------- User-Organization --------------------

func (r *GormMembershipRepository) AddUserToOrganization(userID, organizationID uint64) error {
	if err := r.userExists(userID); err != nil {
		return err
	}
	if err := r.organizationExists(organizationID); err != nil {
		return err
	}
	return r.addEdge(
		&models.UserOrganization{UserID: userID, OrganizationID: organizationID},
		"user_id = ? AND organization_id = ?",
		"User is already a member of this organization",
		userID, organizationID,
	)
}

func (r *GormMembershipRepository) RemoveUserFromOrganization(userID, organizationID uint64) error {
	return r.removeEdge(
		&models.UserOrganization{},
		"user_id = ? AND organization_id = ?",
		"Membership", fmt.Sprintf("user:%d-org:%d", userID, organizationID),
		userID, organizationID,
	)
}

func (r *GormMembershipRepository) GetOrganizationUsers(organizationID uint64) ([]models.User, error) {
	if err := r.organizationExists(organizationID); err != nil {
		return nil, err
	}
	var users []models.User
	err := r.db.Model(&models.User{}).
		Joins("JOIN user_organizations ON users.id = user_organizations.user_id").
		Where("user_organizations.organization_id = ?", organizationID).
		Order("users.id").
		Find(&users).Error
	return users, err
}

func (r *GormMembershipRepository) GetOrganizationGroups(organizationID uint64) ([]models.Group, error) {
	if err := r.organizationExists(organizationID); err != nil {
		return nil, err
	}
	var groups []models.Group
	err := r.db.Model(&models.Group{}).
		Joins("JOIN group_organizations ON groups.id = group_organizations.group_id").
		Where("group_organizations.organization_id = ?", organizationID).
		Order("groups.id").
		Find(&groups).Error
	return groups, err
}

// -------------------- Group-Organization --------------------

func (r *GormMembershipRepository) AddGroupToOrganization(groupID, organizationID uint64) error {
	if err := r.groupExists(groupID); err != nil {
		return err
	}
	if err := r.organizationExists(organizationID); err != nil {
		return err
	}
	return r.addEdge(
		&models.GroupOrganization{GroupID: groupID, OrganizationID: organizationID},
		"group_id = ? AND organization_id = ?",
		"Group is already a member of this organization",
		groupID, organizationID,
	)
}

func (r *GormMembershipRepository) RemoveGroupFromOrganization(groupID, organizationID uint64) error {
	return r.removeEdge(
		&models.GroupOrganization{},
		"group_id = ? AND organization_id = ?",
		"Membership", fmt.Sprintf("group:%d-org:%d", groupID, organizationID),
		groupID, organizationID,
	)
}

// -------------------- User-Group --------------------

func (r *GormMembershipRepository) AddUserToGroup(userID, groupID uint64) error {
	if err := r.userExists(userID); err != nil {
		return err
	}
	if err := r.groupExists(groupID); err != nil {
		return err
	}
	return r.addEdge(
		&models.UserGroup{UserID: userID, GroupID: groupID},
		"user_id = ? AND group_id = ?",
		"User is already a member of this group",
		userID, groupID,
	)
}

func (r *GormMembershipRepository) RemoveUserFromGroup(userID, groupID uint64) error {
	return r.removeEdge(
		&models.UserGroup{},
		"user_id = ? AND group_id = ?",
		"Membership", fmt.Sprintf("user:%d-group:%d", userID, groupID),
		userID, groupID,
	)
}

func (r *GormMembershipRepository) GetGroupUsers(groupID uint64) ([]models.User, error) {
	if err := r.groupExists(groupID); err != nil {
		return nil, err
	}
	var users []models.User
	err := r.db.Model(&models.User{}).
		Joins("JOIN user_groups ON users.id = user_groups.user_id").
		Where("user_groups.group_id = ?", groupID).
		Order("users.id").
		Find(&users).Error
	return users, err
}

func (r *GormMembershipRepository) GetGroupRoles(groupID uint64) ([]models.Role, error) {
	if err := r.groupExists(groupID); err != nil {
		return nil, err
	}
	var roles []models.Role
	err := r.db.Model(&models.Role{}).
		Joins("JOIN group_roles ON roles.id = group_roles.role_id").
		Where("group_roles.group_id = ?", groupID).
		Order("roles.id").
		Find(&roles).Error
	return roles, err
}

// -------------------- User-Role --------------------

func (r *GormMembershipRepository) AddRoleToUser(userID, roleID uint64) error {
	if err := r.userExists(userID); err != nil {
		return err
	}
	if err := r.roleExists(roleID); err != nil {
		return err
	}
	return r.addEdge(
		&models.UserRole{UserID: userID, RoleID: roleID},
		"user_id = ? AND role_id = ?",
		"User already has this role",
		userID, roleID,
	)
}

func (r *GormMembershipRepository) RemoveRoleFromUser(userID, roleID uint64) error {
	return r.removeEdge(
		&models.UserRole{},
		"user_id = ? AND role_id = ?",
		"Role assignment", fmt.Sprintf("user:%d-role:%d", userID, roleID),
		userID, roleID,
	)
}

func (r *GormMembershipRepository) GetUserRoles(userID uint64) ([]models.Role, error) {
	if err := r.userExists(userID); err != nil {
		return nil, err
	}
	var roles []models.Role
	err := r.db.Model(&models.Role{}).
		Joins("JOIN user_roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id = ?", userID).
		Order("roles.id").
		Find(&roles).Error
	return roles, err
}

func (r *GormMembershipRepository) GetUserGroups(userID uint64) ([]models.Group, error) {
	if err := r.userExists(userID); err != nil {
		return nil, err
	}
	var groups []models.Group
	err := r.db.Model(&models.Group{}).
		Joins("JOIN user_groups ON groups.id = user_groups.group_id").
		Where("user_groups.user_id = ?", userID).
		Order("groups.id").
		Find(&groups).Error
	return groups, err
}

// -------------------- Group-Role --------------------

func (r *GormMembershipRepository) AddRoleToGroup(groupID, roleID uint64) error {
	if err := r.groupExists(groupID); err != nil {
		return err
	}
	if err := r.roleExists(roleID); err != nil {
		return err
	}
	return r.addEdge(
		&models.GroupRole{GroupID: groupID, RoleID: roleID},
		"group_id = ? AND role_id = ?",
		"Group already has this role",
		groupID, roleID,
	)
}

func (r *GormMembershipRepository) RemoveRoleFromGroup(groupID, roleID uint64) error {
	return r.removeEdge(
		&models.GroupRole{},
		"group_id = ? AND role_id = ?",
		"Role assignment", fmt.Sprintf("group:%d-role:%d", groupID, roleID),
		groupID, roleID,
	)
}

func (r *GormMembershipRepository) GetRoleUsers(roleID uint64) ([]models.User, error) {
	if err := r.roleExists(roleID); err != nil {
		return nil, err
	}
	var users []models.User
	err := r.db.Model(&models.User{}).
		Joins("JOIN user_roles ON users.id = user_roles.user_id").
		Where("user_roles.role_id = ?", roleID).
		Order("users.id").
		Find(&users).Error
	return users, err
}

func (r *GormMembershipRepository) GetRoleGroups(roleID uint64) ([]models.Group, error) {
	if err := r.roleExists(roleID); err != nil {
		return nil, err
	}
	var groups []models.Group
	err := r.db.Model(&models.Group{}).
		Joins("JOIN group_roles ON groups.id = group_roles.group_id").
		Where("group_roles.role_id = ?", roleID).
		Order("groups.id").
		Find(&groups).Error
	return groups, err
}

// -------------------- Group Delegates --------------------

func (r *GormMembershipRepository) AddDelegateToGroup(groupID, userID uint64) error {
	if err := r.groupExists(groupID); err != nil {
		return err
	}
	if err := r.userExists(userID); err != nil {
		return err
	}
	return r.addEdge(
		&models.GroupDelegate{GroupID: groupID, UserID: userID},
		"group_id = ? AND user_id = ?",
		"User is already a delegate of this group",
		groupID, userID,
	)
}

func (r *GormMembershipRepository) RemoveDelegateFromGroup(groupID, userID uint64) error {
	return r.removeEdge(
		&models.GroupDelegate{},
		"group_id = ? AND user_id = ?",
		"Delegate", fmt.Sprintf("group:%d-user:%d", groupID, userID),
		groupID, userID,
	)
}

func (r *GormMembershipRepository) GetGroupDelegates(groupID uint64) ([]models.User, error) {
	if err := r.groupExists(groupID); err != nil {
		return nil, err
	}
	var users []models.User
	err := r.db.Model(&models.User{}).
		Joins("JOIN group_delegates ON users.id = group_delegates.user_id").
		Where("group_delegates.group_id = ?", groupID).
		Order("users.id").
		Find(&users).Error
	return users, err
}

// -------------------- Cascaded Objectives --------------------

func (r *GormMembershipRepository) CascadeObjectiveToChild(parentGroupID, childGroupID, objectiveID uint64) (*models.GroupCascadedObjective, error) {
	if err := r.groupExists(parentGroupID); err != nil {
		return nil, err
	}
	if err := r.groupExists(childGroupID); err != nil {
		return nil, err
	}
	if err := r.objectiveExists(objectiveID); err != nil {
		return nil, err
	}

	var child models.Group
	if err := r.db.First(&child, childGroupID).Error; err != nil {
		return nil, err
	}
	if child.ParentID == nil || *child.ParentID != parentGroupID {
		return nil, apperrors.Validation(
			"The specified child group is not a child of the parent group",
			"child_group_id", childGroupID,
		)
	}

	cascaded := &models.GroupCascadedObjective{
		ParentGroupID: parentGroupID,
		ChildGroupID:  childGroupID,
		ObjectiveID:   objectiveID,
		IsActive:      true,
	}
	err := r.addEdge(
		cascaded,
		"parent_group_id = ? AND child_group_id = ? AND objective_id = ?",
		"This objective is already cascaded to this child group",
		parentGroupID, childGroupID, objectiveID,
	)
	if err != nil {
		return nil, err
	}
	return cascaded, nil
}

func (r *GormMembershipRepository) RemoveCascadedObjective(parentGroupID, childGroupID, objectiveID uint64) error {
	return r.removeEdge(
		&models.GroupCascadedObjective{},
		"parent_group_id = ? AND child_group_id = ? AND objective_id = ?",
		"CascadedObjective",
		fmt.Sprintf("parent:%d-child:%d-obj:%d", parentGroupID, childGroupID, objectiveID),
		parentGroupID, childGroupID, objectiveID,
	)
}

func (r *GormMembershipRepository) ToggleCascadedObjective(cascadedID uint64, isActive bool) (*models.GroupCascadedObjective, error) {
	var cascaded models.GroupCascadedObjective
	if err := r.db.First(&cascaded, cascadedID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("CascadedObjective", cascadedID)
		}
		return nil, err
	}
	cascaded.IsActive = isActive
	if err := r.db.Save(&cascaded).Error; err != nil {
		return nil, err
	}
	return &cascaded, nil
}

func (r *GormMembershipRepository) GetCascadedObjectivesForGroup(groupID uint64) ([]models.GroupCascadedObjective, error) {
	if err := r.groupExists(groupID); err != nil {
		return nil, err
	}
	var cascaded []models.GroupCascadedObjective
	err := r.db.Where("child_group_id = ?", groupID).Order("id").Find(&cascaded).Error
	return cascaded, err
}

// -------------------- Existence checks --------------------

func (r *GormMembershipRepository) entityExists(model interface{}, resource string, id uint64) error {
	var count int64
	if err := r.db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperrors.NotFound(resource, id)
	}
	return nil
}

func (r *GormMembershipRepository) userExists(id uint64) error {
	return r.entityExists(&models.User{}, "User", id)
}

func (r *GormMembershipRepository) organizationExists(id uint64) error {
	return r.entityExists(&models.Organization{}, "Organization", id)
}

func (r *GormMembershipRepository) groupExists(id uint64) error {
	return r.entityExists(&models.Group{}, "Group", id)
}

func (r *GormMembershipRepository) roleExists(id uint64) error {
	return r.entityExists(&models.Role{}, "Role", id)
}

func (r *GormMembershipRepository) objectiveExists(id uint64) error {
	return r.entityExists(&models.Objective{}, "Objective", id)
}
