package models

type OwnerType string

const (
	OwnerTypeUser  OwnerType = "user"
	OwnerTypeRole  OwnerType = "role"
	OwnerTypeGroup OwnerType = "group"
)

// Valid reports whether t is in the closed set of owner types.
func (t OwnerType) Valid() bool {
	switch t {
	case OwnerTypeUser, OwnerTypeRole, OwnerTypeGroup:
		return true
	}
	return false
}

// Resource returns the owner type's entity name for error messages.
func (t OwnerType) Resource() string {
	switch t {
	case OwnerTypeUser:
		return "User"
	case OwnerTypeRole:
		return "Role"
	case OwnerTypeGroup:
		return "Group"
	}
	return "Owner"
}

// ObjectiveOwnership links an objective to a user, role, or group. OwnerID is
// polymorphic: its meaning depends on OwnerType, so it intentionally carries
// no foreign key. Owner existence is enforced at write time only.
type ObjectiveOwnership struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	ObjectiveID uint64    `gorm:"not null;uniqueIndex:uq_ownership" json:"objective_id"`
	OwnerType   OwnerType `gorm:"type:varchar(10);not null;uniqueIndex:uq_ownership" json:"owner_type"`
	OwnerID     uint64    `gorm:"not null;uniqueIndex:uq_ownership" json:"owner_id"`
}

func (ObjectiveOwnership) TableName() string { return "objective_ownerships" }

// GroupCascadedObjective records that an objective has been propagated from a
// parent group to one of its direct children.
type GroupCascadedObjective struct {
	ID            uint64 `gorm:"primarykey" json:"id"`
	ParentGroupID uint64 `gorm:"not null;uniqueIndex:uq_cascaded" json:"parent_group_id"`
	ChildGroupID  uint64 `gorm:"not null;uniqueIndex:uq_cascaded" json:"child_group_id"`
	ObjectiveID   uint64 `gorm:"not null;uniqueIndex:uq_cascaded" json:"objective_id"`
	IsActive      bool   `gorm:"not null;default:true" json:"is_active"`
}

func (GroupCascadedObjective) TableName() string { return "group_cascaded_objectives" }
