package dto

import (
	"github.com/yukikurage/okr-tracker-api/internal/models"
)

// OwnershipDTO represents an objective-ownership row with the owner's
// display name resolved.
type OwnershipDTO struct {
	ID          uint64           `json:"id"`
	ObjectiveID uint64           `json:"objective_id"`
	OwnerType   models.OwnerType `json:"owner_type"`
	OwnerID     uint64           `json:"owner_id"`
	OwnerName   string           `json:"owner_name,omitempty"`
}

// AddOwnershipRequest assigns an owner to an objective
type AddOwnershipRequest struct {
	OwnerType string `json:"owner_type" binding:"required"`
	OwnerID   uint64 `json:"owner_id" binding:"required"`
}

// UserAssignmentsDTO partitions a user's objectives by how they were
// granted. An objective owned both directly and through a role appears in
// Individual and under that role's name.
type UserAssignmentsDTO struct {
	Individual []ObjectiveDTO            `json:"individual"`
	ByRole     map[string][]ObjectiveDTO `json:"by_role"`
	ByGroup    map[string][]ObjectiveDTO `json:"by_group"`
}

// ToOwnershipDTO converts an ObjectiveOwnership model with its resolved name
func ToOwnershipDTO(ownership models.ObjectiveOwnership, ownerName string) OwnershipDTO {
	return OwnershipDTO{
		ID:          ownership.ID,
		ObjectiveID: ownership.ObjectiveID,
		OwnerType:   ownership.OwnerType,
		OwnerID:     ownership.OwnerID,
		OwnerName:   ownerName,
	}
}
