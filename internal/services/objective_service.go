package services

import (
	"time"

	"github.com/yukikurage/okr-tracker-api/internal/models"
	"github.com/yukikurage/okr-tracker-api/internal/repository"
)

// CreateObjectiveInput represents input for creating an objective
type CreateObjectiveInput struct {
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
}

// UpdateObjectiveInput represents input for updating an objective
type UpdateObjectiveInput struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	IsComplete  *bool
}

// ObjectiveService handles objective business logic
type ObjectiveService struct {
	objectiveRepo repository.ObjectiveRepository
}

// NewObjectiveService creates a new ObjectiveService
func NewObjectiveService(objectiveRepo repository.ObjectiveRepository) *ObjectiveService {
	return &ObjectiveService{objectiveRepo: objectiveRepo}
}

func (s *ObjectiveService) Create(input CreateObjectiveInput) (*models.Objective, error) {
	objective := &models.Objective{
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}
	if err := s.objectiveRepo.Create(objective); err != nil {
		return nil, classify(err)
	}
	return objective, nil
}

// Get loads the objective with its key results so progress and the
// celebration milestone can be computed.
func (s *ObjectiveService) Get(id uint64) (*models.Objective, error) {
	objective, err := s.objectiveRepo.FindByID(id, "KeyResults")
	if err != nil {
		return nil, notFoundOr(err, "Objective", id)
	}
	return objective, nil
}

func (s *ObjectiveService) List(params repository.ListParams) ([]models.Objective, int64, error) {
	objectives, count, err := s.objectiveRepo.List(params)
	if err != nil {
		return nil, 0, classify(err)
	}
	return objectives, count, nil
}

func (s *ObjectiveService) Update(id uint64, input UpdateObjectiveInput) (*models.Objective, error) {
	objective, err := s.objectiveRepo.FindByID(id, "KeyResults")
	if err != nil {
		return nil, notFoundOr(err, "Objective", id)
	}
	if input.Name != nil {
		objective.Name = *input.Name
	}
	if input.Description != nil {
		objective.Description = *input.Description
	}
	if input.StartDate != nil {
		objective.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		objective.EndDate = input.EndDate
	}
	if input.IsComplete != nil {
		objective.IsComplete = *input.IsComplete
	}
	if err := s.objectiveRepo.Update(objective); err != nil {
		return nil, classify(err)
	}
	return objective, nil
}

func (s *ObjectiveService) Delete(id uint64) error {
	if _, err := s.objectiveRepo.FindByID(id); err != nil {
		return notFoundOr(err, "Objective", id)
	}
	if err := s.objectiveRepo.Delete(id); err != nil {
		return classify(err)
	}
	return nil
}
