package models

import "time"

// Group is a team-like unit. Groups form a single-parent tree via ParentID;
// deleting a group nulls out its children's ParentID rather than cascading.
type Group struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	ParentID    *uint64   `gorm:"index" json:"parent_id"`
	OwnerID     *uint64   `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Parent   *Group  `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL" json:"parent,omitempty"`
	Children []Group `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Owner    *User   `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL" json:"owner,omitempty"`
}
