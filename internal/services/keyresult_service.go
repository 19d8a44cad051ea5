package services

import (
	"time"

	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
	"github.com/yukikurage/okr-tracker-api/internal/broadcast"
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"github.com/yukikurage/okr-tracker-api/internal/repository"
)

// CreateKeyResultInput represents input for creating a key result
type CreateKeyResultInput struct {
	Name         string
	Description  string
	ObjectiveID  uint64
	TargetValue  *float64
	CurrentValue *float64
	Unit         *string
	StartDate    *time.Time
	EndDate      *time.Time
}

// UpdateKeyResultInput represents input for updating a key result
type UpdateKeyResultInput struct {
	Name         *string
	Description  *string
	TargetValue  *float64
	CurrentValue *float64
	Unit         *string
	StartDate    *time.Time
	EndDate      *time.Time
	IsComplete   *bool
}

// KeyResultService handles key result business logic. Every update runs the
// objective completion sync and publishes a change event to the hub.
type KeyResultService struct {
	keyResultRepo repository.KeyResultRepository
	objectiveRepo repository.ObjectiveRepository
	hub           *broadcast.Hub
}

// NewKeyResultService creates a new KeyResultService
func NewKeyResultService(keyResultRepo repository.KeyResultRepository, objectiveRepo repository.ObjectiveRepository, hub *broadcast.Hub) *KeyResultService {
	return &KeyResultService{
		keyResultRepo: keyResultRepo,
		objectiveRepo: objectiveRepo,
		hub:           hub,
	}
}

func (s *KeyResultService) Create(input CreateKeyResultInput) (*models.KeyResult, error) {
	exists, err := s.keyResultRepo.ObjectiveExists(input.ObjectiveID)
	if err != nil {
		return nil, classify(err)
	}
	if !exists {
		return nil, apperrors.NotFound("Objective", input.ObjectiveID)
	}
	kr := &models.KeyResult{
		Name:         input.Name,
		Description:  input.Description,
		ObjectiveID:  input.ObjectiveID,
		TargetValue:  input.TargetValue,
		CurrentValue: input.CurrentValue,
		Unit:         input.Unit,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
	}
	if err := s.keyResultRepo.Create(kr); err != nil {
		return nil, classify(err)
	}
	if err := s.syncObjectiveCompletion(kr.ObjectiveID); err != nil {
		return nil, err
	}
	return kr, nil
}

func (s *KeyResultService) Get(id uint64) (*models.KeyResult, error) {
	kr, err := s.keyResultRepo.FindByID(id, "Objective")
	if err != nil {
		return nil, notFoundOr(err, "KeyResult", id)
	}
	return kr, nil
}

func (s *KeyResultService) List(params repository.ListParams) ([]models.KeyResult, int64, error) {
	krs, count, err := s.keyResultRepo.List(params)
	if err != nil {
		return nil, 0, classify(err)
	}
	return krs, count, nil
}

// Update applies the partial update, re-syncs the parent objective's
// completion state, and broadcasts the new progress. The broadcast is
// best-effort and never fails the request.
func (s *KeyResultService) Update(id uint64, input UpdateKeyResultInput) (*models.KeyResult, error) {
	kr, err := s.keyResultRepo.FindByID(id, "Objective")
	if err != nil {
		return nil, notFoundOr(err, "KeyResult", id)
	}
	if input.Name != nil {
		kr.Name = *input.Name
	}
	if input.Description != nil {
		kr.Description = *input.Description
	}
	if input.TargetValue != nil {
		kr.TargetValue = input.TargetValue
	}
	if input.CurrentValue != nil {
		kr.CurrentValue = input.CurrentValue
	}
	if input.Unit != nil {
		kr.Unit = input.Unit
	}
	if input.StartDate != nil {
		kr.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		kr.EndDate = input.EndDate
	}
	if input.IsComplete != nil {
		kr.IsComplete = *input.IsComplete
	}
	if err := s.keyResultRepo.Update(kr); err != nil {
		return nil, classify(err)
	}
	if err := s.syncObjectiveCompletion(kr.ObjectiveID); err != nil {
		return nil, err
	}
	s.hub.Publish(broadcast.Event{
		Type:        broadcast.EventKeyResultUpdate,
		ObjectiveID: kr.ObjectiveID,
		KeyResultID: kr.ID,
		Progress:    kr.ProgressPercentage(),
	})
	return kr, nil
}

func (s *KeyResultService) Delete(id uint64) error {
	kr, err := s.keyResultRepo.FindByID(id)
	if err != nil {
		return notFoundOr(err, "KeyResult", id)
	}
	if err := s.keyResultRepo.Delete(id); err != nil {
		return classify(err)
	}
	return s.syncObjectiveCompletion(kr.ObjectiveID)
}

// syncObjectiveCompletion recomputes the objective's is_complete flag from
// its key results. The sync is two-way: completing the last key result
// completes the objective, and un-completing any key result un-completes it.
// An objective with no key results is never auto-toggled.
func (s *KeyResultService) syncObjectiveCompletion(objectiveID uint64) error {
	objective, err := s.objectiveRepo.FindByID(objectiveID, "KeyResults")
	if err != nil {
		return notFoundOr(err, "Objective", objectiveID)
	}
	if len(objective.KeyResults) == 0 {
		return nil
	}
	fullyDone := true
	for _, kr := range objective.KeyResults {
		if !kr.IsComplete && kr.ProgressPercentage() < 100 {
			fullyDone = false
			break
		}
	}
	if fullyDone == objective.IsComplete {
		return nil
	}
	objective.IsComplete = fullyDone
	if err := s.objectiveRepo.Update(objective); err != nil {
		return classify(err)
	}
	return nil
}
