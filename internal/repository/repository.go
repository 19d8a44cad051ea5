package repository

import (
	"time"

	"github.com/yukikurage/okr-tracker-api/internal/models"
)

// ListParams holds pagination, ordering and filtering options for list
// queries. Ordering uses the "field" / "-field" convention; filter values are
// matched as case-insensitive substrings. Both are validated against
// per-entity whitelists before any query is built.
type ListParams struct {
	Page     int
	PageSize int
	Ordering string
	Filters  map[string]string
}

// OrganizationRepository defines data access for organizations.
type OrganizationRepository interface {
	Create(org *models.Organization) error
	FindByID(id uint64) (*models.Organization, error)
	List(params ListParams) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uint64) error
}

// UserRepository defines data access for users.
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint64) (*models.User, error)
	List(params ListParams) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uint64) error
}

// RoleRepository defines data access for roles.
type RoleRepository interface {
	Create(role *models.Role) error
	FindByID(id uint64) (*models.Role, error)
	List(params ListParams) ([]models.Role, int64, error)
	Update(role *models.Role) error
	Delete(id uint64) error
}

// GroupRepository defines data access for groups and their hierarchy.
type GroupRepository interface {
	Create(group *models.Group) error

	// FindByID loads a group with parent, children and owner.
	FindByID(id uint64) (*models.Group, error)

	List(params ListParams) ([]models.Group, int64, error)
	Update(group *models.Group) error

	// Delete removes the group; children's parent_id and streaks are
	// handled by the SET NULL / CASCADE constraints.
	Delete(id uint64) error
}

// ObjectiveRepository defines data access for objectives.
type ObjectiveRepository interface {
	Create(objective *models.Objective) error
	FindByID(id uint64, preload ...string) (*models.Objective, error)
	List(params ListParams) ([]models.Objective, int64, error)
	Update(objective *models.Objective) error

	// Delete removes the objective together with its key results and
	// ownership rows.
	Delete(id uint64) error
}

// KeyResultRepository defines data access for key results.
type KeyResultRepository interface {
	Create(kr *models.KeyResult) error
	FindByID(id uint64, preload ...string) (*models.KeyResult, error)
	List(params ListParams) ([]models.KeyResult, int64, error)
	Update(kr *models.KeyResult) error

	// Delete removes the key result together with its reactions and
	// recurring schedule.
	Delete(id uint64) error

	ObjectiveExists(objectiveID uint64) (bool, error)
}

// MembershipRepository manages the five many-to-many membership edges plus
// group delegates and cascaded objectives. Add methods fail with NotFound
// when an endpoint entity is missing and Conflict when the edge already
// exists; Remove methods fail with NotFound when the edge is absent; list
// methods fail with NotFound when the queried entity is missing.
type MembershipRepository interface {
	AddUserToOrganization(userID, organizationID uint64) error
	RemoveUserFromOrganization(userID, organizationID uint64) error
	GetOrganizationUsers(organizationID uint64) ([]models.User, error)
	GetOrganizationGroups(organizationID uint64) ([]models.Group, error)

	AddGroupToOrganization(groupID, organizationID uint64) error
	RemoveGroupFromOrganization(groupID, organizationID uint64) error

	AddUserToGroup(userID, groupID uint64) error
	RemoveUserFromGroup(userID, groupID uint64) error
	GetGroupUsers(groupID uint64) ([]models.User, error)
	GetGroupRoles(groupID uint64) ([]models.Role, error)

	AddRoleToUser(userID, roleID uint64) error
	RemoveRoleFromUser(userID, roleID uint64) error
	GetUserRoles(userID uint64) ([]models.Role, error)
	GetUserGroups(userID uint64) ([]models.Group, error)

	AddRoleToGroup(groupID, roleID uint64) error
	RemoveRoleFromGroup(groupID, roleID uint64) error
	GetRoleUsers(roleID uint64) ([]models.User, error)
	GetRoleGroups(roleID uint64) ([]models.Group, error)

	AddDelegateToGroup(groupID, userID uint64) error
	RemoveDelegateFromGroup(groupID, userID uint64) error
	GetGroupDelegates(groupID uint64) ([]models.User, error)

	CascadeObjectiveToChild(parentGroupID, childGroupID, objectiveID uint64) (*models.GroupCascadedObjective, error)
	RemoveCascadedObjective(parentGroupID, childGroupID, objectiveID uint64) error
	ToggleCascadedObjective(cascadedID uint64, isActive bool) (*models.GroupCascadedObjective, error)
	GetCascadedObjectivesForGroup(groupID uint64) ([]models.GroupCascadedObjective, error)
}

// OwnerKey identifies a polymorphic owner for bulk name resolution.
type OwnerKey struct {
	Type models.OwnerType
	ID   uint64
}

// UserAssignments is the raw result of resolving a user's objectives:
// every matched objective plus, per objective id, whether a direct
// user-ownership row exists and which role/group names granted it. A single
// objective may appear in several grant sets at once.
type UserAssignments struct {
	Objectives []models.Objective
	DirectIDs  map[uint64]bool
	ByRole     map[uint64][]string
	ByGroup    map[uint64][]string
}

// OwnershipRepository manages the polymorphic objective-ownership table and
// resolves user assignment sets.
type OwnershipRepository interface {
	AddOwnership(objectiveID uint64, ownerType models.OwnerType, ownerID uint64) (*models.ObjectiveOwnership, error)
	RemoveOwnership(objectiveID uint64, ownerType models.OwnerType, ownerID uint64) error
	GetObjectiveOwnerships(objectiveID uint64) ([]models.ObjectiveOwnership, error)
	GetOwnerName(ownerType models.OwnerType, ownerID uint64) (string, error)
	GetOwnerNames(ownerships []models.ObjectiveOwnership) (map[OwnerKey]string, error)

	// GetUserObjectives returns every objective assigned to the user
	// directly or through a role or group, with the granting edges.
	GetUserObjectives(userID uint64) (*UserAssignments, error)
}

// ReactionRepository manages emoji reactions on key results.
type ReactionRepository interface {
	Find(keyResultID, userID uint64, emoji string) (*models.Reaction, error)
	Add(keyResultID, userID uint64, emoji string) (*models.Reaction, error)
	Remove(keyResultID, userID uint64, emoji string) error

	// ListForKeyResult returns reactions ordered by creation time with
	// users preloaded.
	ListForKeyResult(keyResultID uint64) ([]models.Reaction, error)
}

// RecurringRepository manages recurring schedules.
type RecurringRepository interface {
	Create(schedule *models.RecurringSchedule) error
	FindByKeyResult(keyResultID uint64) (*models.RecurringSchedule, error)
	Update(schedule *models.RecurringSchedule) error
	Delete(keyResultID uint64) error

	// FindDue returns schedules with next_due_date <= asOf, key results
	// and their objectives preloaded.
	FindDue(asOf time.Time) ([]models.RecurringSchedule, error)

	All() ([]models.RecurringSchedule, error)
}

// StreakRepository manages per-group activity streaks.
type StreakRepository interface {
	GetOrCreate(groupID uint64) (*models.GroupStreak, error)
	Save(streak *models.GroupStreak) error

	// FindStale returns streaks whose last activity predates cutoff and
	// whose current streak is still positive.
	FindStale(cutoff time.Time) ([]models.GroupStreak, error)
}
