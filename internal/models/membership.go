package models

// Membership edges are pure join tables with composite primary keys. Rows are
// created and destroyed independently of the entities they connect; removing
// an edge that does not exist is an error, not a no-op.

type UserOrganization struct {
	UserID         uint64 `gorm:"primarykey" json:"user_id"`
	OrganizationID uint64 `gorm:"primarykey" json:"organization_id"`
}

func (UserOrganization) TableName() string { return "user_organizations" }

type GroupOrganization struct {
	GroupID        uint64 `gorm:"primarykey" json:"group_id"`
	OrganizationID uint64 `gorm:"primarykey" json:"organization_id"`
}

func (GroupOrganization) TableName() string { return "group_organizations" }

type UserGroup struct {
	UserID  uint64 `gorm:"primarykey" json:"user_id"`
	GroupID uint64 `gorm:"primarykey" json:"group_id"`
}

func (UserGroup) TableName() string { return "user_groups" }

type UserRole struct {
	UserID uint64 `gorm:"primarykey" json:"user_id"`
	RoleID uint64 `gorm:"primarykey" json:"role_id"`
}

func (UserRole) TableName() string { return "user_roles" }

type GroupRole struct {
	GroupID uint64 `gorm:"primarykey" json:"group_id"`
	RoleID  uint64 `gorm:"primarykey" json:"role_id"`
}

func (GroupRole) TableName() string { return "group_roles" }

// GroupDelegate marks a user who can edit the group besides its owner.
type GroupDelegate struct {
	GroupID uint64 `gorm:"primarykey" json:"group_id"`
	UserID  uint64 `gorm:"primarykey" json:"user_id"`
}

func (GroupDelegate) TableName() string { return "group_delegates" }
