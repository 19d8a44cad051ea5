package models

import "time"

// Role is an authorization-scoping construct; it carries no hierarchy of
// its own and is attached to users and groups through membership edges.
type Role struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
