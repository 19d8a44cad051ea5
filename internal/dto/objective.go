package dto

import (
	"time"

	"github.com/yukikurage/okr-tracker-api/internal/models"
)

// KeyResultDTO represents a key result in API responses. EffectiveStartDate
// and EffectiveEndDate fall back to the objective's dates when the key result
// has none of its own.
type KeyResultDTO struct {
	ID                 uint64     `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	ObjectiveID        uint64     `json:"objective_id"`
	TargetValue        *float64   `json:"target_value"`
	CurrentValue       *float64   `json:"current_value"`
	Unit               *string    `json:"unit"`
	StartDate          *time.Time `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
	EffectiveStartDate *time.Time `json:"effective_start_date"`
	EffectiveEndDate   *time.Time `json:"effective_end_date"`
	IsComplete         bool       `json:"is_complete"`
	ProgressPercentage float64    `json:"progress_percentage"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ObjectiveDTO represents an objective in API responses
type ObjectiveDTO struct {
	ID                 uint64         `json:"id"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	StartDate          *time.Time     `json:"start_date"`
	EndDate            *time.Time     `json:"end_date"`
	IsComplete         bool           `json:"is_complete"`
	ProgressPercentage float64        `json:"progress_percentage"`
	CelebrationTrigger string         `json:"celebration_trigger,omitempty"`
	KeyResults         []KeyResultDTO `json:"key_results,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// CreateObjectiveRequest is the create payload for objectives
type CreateObjectiveRequest struct {
	Name        string     `json:"name" binding:"required,max=255"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// UpdateObjectiveRequest is the partial-update payload for objectives
type UpdateObjectiveRequest struct {
	Name        *string    `json:"name" binding:"omitempty,max=255"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsComplete  *bool      `json:"is_complete"`
}

// CreateKeyResultRequest is the create payload for key results
type CreateKeyResultRequest struct {
	Name         string     `json:"name" binding:"required,max=255"`
	Description  string     `json:"description"`
	ObjectiveID  uint64     `json:"objective_id" binding:"required"`
	TargetValue  *float64   `json:"target_value"`
	CurrentValue *float64   `json:"current_value"`
	Unit         *string    `json:"unit"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

// UpdateKeyResultRequest is the partial-update payload for key results
type UpdateKeyResultRequest struct {
	Name         *string    `json:"name" binding:"omitempty,max=255"`
	Description  *string    `json:"description"`
	TargetValue  *float64   `json:"target_value"`
	CurrentValue *float64   `json:"current_value"`
	Unit         *string    `json:"unit"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsComplete   *bool      `json:"is_complete"`
}

// ToKeyResultDTO converts a KeyResult model to KeyResultDTO
func ToKeyResultDTO(kr models.KeyResult) KeyResultDTO {
	return KeyResultDTO{
		ID:                 kr.ID,
		Name:               kr.Name,
		Description:        kr.Description,
		ObjectiveID:        kr.ObjectiveID,
		TargetValue:        kr.TargetValue,
		CurrentValue:       kr.CurrentValue,
		Unit:               kr.Unit,
		StartDate:          kr.StartDate,
		EndDate:            kr.EndDate,
		EffectiveStartDate: kr.EffectiveStartDate(),
		EffectiveEndDate:   kr.EffectiveEndDate(),
		IsComplete:         kr.IsComplete,
		ProgressPercentage: kr.ProgressPercentage(),
		CreatedAt:          kr.CreatedAt,
		UpdatedAt:          kr.UpdatedAt,
	}
}

// ToObjectiveDTO converts an Objective model to ObjectiveDTO, computing
// progress and the celebration milestone from the loaded key results.
func ToObjectiveDTO(objective models.Objective) ObjectiveDTO {
	dto := ObjectiveDTO{
		ID:                 objective.ID,
		Name:               objective.Name,
		Description:        objective.Description,
		StartDate:          objective.StartDate,
		EndDate:            objective.EndDate,
		IsComplete:         objective.IsComplete,
		ProgressPercentage: objective.ProgressPercentage(),
		CelebrationTrigger: objective.CelebrationTrigger(),
		CreatedAt:          objective.CreatedAt,
		UpdatedAt:          objective.UpdatedAt,
	}
	for _, kr := range objective.KeyResults {
		dto.KeyResults = append(dto.KeyResults, ToKeyResultDTO(kr))
	}
	return dto
}

// ToObjectiveDTOs converts a slice of Objective models
func ToObjectiveDTOs(objectives []models.Objective) []ObjectiveDTO {
	dtos := make([]ObjectiveDTO, 0, len(objectives))
	for _, objective := range objectives {
		dtos = append(dtos, ToObjectiveDTO(objective))
	}
	return dtos
}

// ToKeyResultDTOs converts a slice of KeyResult models
func ToKeyResultDTOs(krs []models.KeyResult) []KeyResultDTO {
	dtos := make([]KeyResultDTO, 0, len(krs))
	for _, kr := range krs {
		dtos = append(dtos, ToKeyResultDTO(kr))
	}
	return dtos
}
