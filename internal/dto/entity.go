package dto

import (
	"time"

	"github.com/yukikurage/okr-tracker-api/internal/models"
)

// OrganizationDTO represents an organization in API responses
type OrganizationDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserDTO represents a user in API responses
type UserDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoleDTO represents a role in API responses
type RoleDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GroupDTO represents a group in API responses
type GroupDTO struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ParentID    *uint64    `json:"parent_id"`
	OwnerID     *uint64    `json:"owner_id"`
	Parent      *GroupDTO  `json:"parent,omitempty"`
	Children    []GroupDTO `json:"children,omitempty"`
	Owner       *UserDTO   `json:"owner,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateEntityRequest is the create payload shared by organizations, users
// and roles.
type CreateEntityRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

// UpdateEntityRequest is the partial-update payload shared by organizations,
// users and roles.
type UpdateEntityRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
}

// CreateGroupRequest is the create payload for groups
type CreateGroupRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description string  `json:"description"`
	ParentID    *uint64 `json:"parent_id"`
	OwnerID     *uint64 `json:"owner_id"`
}

// UpdateGroupRequest is the partial-update payload for groups
type UpdateGroupRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	ParentID    *uint64 `json:"parent_id"`
	OwnerID     *uint64 `json:"owner_id"`
}

// Conversion functions

// ToOrganizationDTO converts an Organization model to OrganizationDTO
func ToOrganizationDTO(org models.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:          org.ID,
		Name:        org.Name,
		Description: org.Description,
		CreatedAt:   org.CreatedAt,
		UpdatedAt:   org.UpdatedAt,
	}
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Name:        user.Name,
		Description: user.Description,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// ToRoleDTO converts a Role model to RoleDTO
func ToRoleDTO(role models.Role) RoleDTO {
	return RoleDTO{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		CreatedAt:   role.CreatedAt,
		UpdatedAt:   role.UpdatedAt,
	}
}

// ToGroupDTO converts a Group model to GroupDTO, including whatever
// relations are loaded.
func ToGroupDTO(group models.Group) GroupDTO {
	dto := GroupDTO{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		ParentID:    group.ParentID,
		OwnerID:     group.OwnerID,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
	if group.Parent != nil {
		parent := ToGroupDTO(*group.Parent)
		dto.Parent = &parent
	}
	for _, child := range group.Children {
		dto.Children = append(dto.Children, ToGroupDTO(child))
	}
	if group.Owner != nil {
		owner := ToUserDTO(*group.Owner)
		dto.Owner = &owner
	}
	return dto
}

// ToUserDTOs converts a slice of User models
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, ToUserDTO(user))
	}
	return dtos
}

// ToGroupDTOs converts a slice of Group models
func ToGroupDTOs(groups []models.Group) []GroupDTO {
	dtos := make([]GroupDTO, 0, len(groups))
	for _, group := range groups {
		dtos = append(dtos, ToGroupDTO(group))
	}
	return dtos
}

// ToRoleDTOs converts a slice of Role models
func ToRoleDTOs(roles []models.Role) []RoleDTO {
	dtos := make([]RoleDTO, 0, len(roles))
	for _, role := range roles {
		dtos = append(dtos, ToRoleDTO(role))
	}
	return dtos
}

// ToOrganizationDTOs converts a slice of Organization models
func ToOrganizationDTOs(orgs []models.Organization) []OrganizationDTO {
	dtos := make([]OrganizationDTO, 0, len(orgs))
	for _, org := range orgs {
		dtos = append(dtos, ToOrganizationDTO(org))
	}
	return dtos
}
