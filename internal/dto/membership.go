package dto

import (
	"github.com/yukikurage/okr-tracker-api/internal/models"
)

// OrganizationMembersDTO lists an organization's users and groups
type OrganizationMembersDTO struct {
	Users  []UserDTO  `json:"users"`
	Groups []GroupDTO `json:"groups"`
}

// GroupMembersDTO lists a group's users and roles
type GroupMembersDTO struct {
	Users []UserDTO `json:"users"`
	Roles []RoleDTO `json:"roles"`
}

// UserMembershipsDTO lists a user's roles and groups
type UserMembershipsDTO struct {
	Roles  []RoleDTO  `json:"roles"`
	Groups []GroupDTO `json:"groups"`
}

// CascadedObjectiveDTO represents an objective propagated from a parent
// group to a child group.
type CascadedObjectiveDTO struct {
	ID            uint64 `json:"id"`
	ParentGroupID uint64 `json:"parent_group_id"`
	ChildGroupID  uint64 `json:"child_group_id"`
	ObjectiveID   uint64 `json:"objective_id"`
	IsActive      bool   `json:"is_active"`
}

// CascadeObjectiveRequest propagates an objective to a direct child group
type CascadeObjectiveRequest struct {
	ChildGroupID uint64 `json:"child_group_id" binding:"required"`
	ObjectiveID  uint64 `json:"objective_id" binding:"required"`
}

// ToggleCascadedObjectiveRequest flips a cascaded objective's active flag
type ToggleCascadedObjectiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// ToCascadedObjectiveDTO converts a GroupCascadedObjective model
func ToCascadedObjectiveDTO(cascaded models.GroupCascadedObjective) CascadedObjectiveDTO {
	return CascadedObjectiveDTO{
		ID:            cascaded.ID,
		ParentGroupID: cascaded.ParentGroupID,
		ChildGroupID:  cascaded.ChildGroupID,
		ObjectiveID:   cascaded.ObjectiveID,
		IsActive:      cascaded.IsActive,
	}
}

// ToCascadedObjectiveDTOs converts a slice of GroupCascadedObjective models
func ToCascadedObjectiveDTOs(cascaded []models.GroupCascadedObjective) []CascadedObjectiveDTO {
	dtos := make([]CascadedObjectiveDTO, 0, len(cascaded))
	for _, c := range cascaded {
		dtos = append(dtos, ToCascadedObjectiveDTO(c))
	}
	return dtos
}
