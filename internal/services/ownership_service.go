package services

import (
	"github.com/yukikurage/okr-tracker-api/internal/dto"
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"github.com/yukikurage/okr-tracker-api/internal/repository"
)

// OwnershipService handles polymorphic objective ownership and resolves a
// user's full assignment set.
type OwnershipService struct {
	ownershipRepo repository.OwnershipRepository
}

// NewOwnershipService creates a new OwnershipService
func NewOwnershipService(ownershipRepo repository.OwnershipRepository) *OwnershipService {
	return &OwnershipService{ownershipRepo: ownershipRepo}
}

func (s *OwnershipService) AddOwnership(objectiveID uint64, ownerType models.OwnerType, ownerID uint64) (*models.ObjectiveOwnership, error) {
	ownership, err := s.ownershipRepo.AddOwnership(objectiveID, ownerType, ownerID)
	if err != nil {
		return nil, classify(err)
	}
	return ownership, nil
}

func (s *OwnershipService) RemoveOwnership(objectiveID uint64, ownerType models.OwnerType, ownerID uint64) error {
	if err := s.ownershipRepo.RemoveOwnership(objectiveID, ownerType, ownerID); err != nil {
		return classify(err)
	}
	return nil
}

// ListOwnerships returns the objective's ownership rows with owner display
// names resolved in bulk, one query per owner type.
func (s *OwnershipService) ListOwnerships(objectiveID uint64) ([]dto.OwnershipDTO, error) {
	ownerships, err := s.ownershipRepo.GetObjectiveOwnerships(objectiveID)
	if err != nil {
		return nil, classify(err)
	}
	names, err := s.ownershipRepo.GetOwnerNames(ownerships)
	if err != nil {
		return nil, classify(err)
	}
	result := make([]dto.OwnershipDTO, 0, len(ownerships))
	for _, o := range ownerships {
		name := names[repository.OwnerKey{Type: o.OwnerType, ID: o.OwnerID}]
		result = append(result, dto.ToOwnershipDTO(o, name))
	}
	return result, nil
}

// ResolveUserAssignments partitions the user's objectives into individual
// assignments and per-role / per-group buckets keyed by the granting name.
// An objective reachable several ways appears in every bucket that granted
// it; nothing is de-duplicated across buckets.
func (s *OwnershipService) ResolveUserAssignments(userID uint64) (*dto.UserAssignmentsDTO, error) {
	assignments, err := s.ownershipRepo.GetUserObjectives(userID)
	if err != nil {
		return nil, classify(err)
	}

	result := &dto.UserAssignmentsDTO{
		Individual: []dto.ObjectiveDTO{},
		ByRole:     map[string][]dto.ObjectiveDTO{},
		ByGroup:    map[string][]dto.ObjectiveDTO{},
	}
	for _, objective := range assignments.Objectives {
		objectiveDTO := dto.ToObjectiveDTO(objective)
		if assignments.DirectIDs[objective.ID] {
			result.Individual = append(result.Individual, objectiveDTO)
		}
		for _, roleName := range assignments.ByRole[objective.ID] {
			result.ByRole[roleName] = append(result.ByRole[roleName], objectiveDTO)
		}
		for _, groupName := range assignments.ByGroup[objective.ID] {
			result.ByGroup[groupName] = append(result.ByGroup[groupName], objectiveDTO)
		}
	}
	return result, nil
}
