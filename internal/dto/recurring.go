package dto

import (
	"time"

	"github.com/yukikurage/okr-tracker-api/internal/models"
)

// RecurringScheduleDTO represents a recurring schedule in API responses.
// CurrentAssignee is 0 when rotation is disabled or the rotation list is
// empty.
type RecurringScheduleDTO struct {
	ID                   uint64           `json:"id"`
	KeyResultID          uint64           `json:"key_result_id"`
	Frequency            models.Frequency `json:"frequency"`
	RotationEnabled      bool             `json:"rotation_enabled"`
	RotationUsers        []uint64         `json:"rotation_users"`
	CurrentRotationIndex int              `json:"current_rotation_index"`
	CurrentAssignee      uint64           `json:"current_assignee,omitempty"`
	NextDueDate          time.Time        `json:"next_due_date"`
	LastGeneratedAt      *time.Time       `json:"last_generated_at"`
}

// CreateRecurringScheduleRequest creates a schedule for a key result
type CreateRecurringScheduleRequest struct {
	KeyResultID     uint64    `json:"key_result_id" binding:"required"`
	Frequency       string    `json:"frequency" binding:"required"`
	NextDueDate     time.Time `json:"next_due_date" binding:"required"`
	RotationEnabled bool      `json:"rotation_enabled"`
	RotationUsers   []uint64  `json:"rotation_users"`
}

// UpdateRecurringScheduleRequest is the partial-update payload for schedules
type UpdateRecurringScheduleRequest struct {
	Frequency       *string    `json:"frequency"`
	NextDueDate     *time.Time `json:"next_due_date"`
	RotationEnabled *bool      `json:"rotation_enabled"`
	RotationUsers   []uint64   `json:"rotation_users"`
}

// DueTodayItemDTO is one due schedule enriched with key result, objective
// and assignee context.
type DueTodayItemDTO struct {
	ScheduleID    uint64           `json:"schedule_id"`
	KeyResultID   uint64           `json:"key_result_id"`
	KeyResultName string           `json:"key_result_name"`
	ObjectiveName string           `json:"objective_name"`
	Frequency     models.Frequency `json:"frequency"`
	NextDueDate   time.Time        `json:"next_due_date"`
	AssigneeID    uint64           `json:"assignee_id,omitempty"`
	AssigneeName  string           `json:"assignee_name,omitempty"`
}

// RegenerateResponse reports the outcome of the regeneration batch job
type RegenerateResponse struct {
	Regenerated int `json:"regenerated"`
	Rotated     int `json:"rotated"`
}

// ToRecurringScheduleDTO converts a RecurringSchedule model
func ToRecurringScheduleDTO(schedule models.RecurringSchedule) RecurringScheduleDTO {
	return RecurringScheduleDTO{
		ID:                   schedule.ID,
		KeyResultID:          schedule.KeyResultID,
		Frequency:            schedule.Frequency,
		RotationEnabled:      schedule.RotationEnabled,
		RotationUsers:        schedule.RotationUsers,
		CurrentRotationIndex: schedule.CurrentRotationIndex,
		CurrentAssignee:      schedule.CurrentAssignee(),
		NextDueDate:          schedule.NextDueDate,
		LastGeneratedAt:      schedule.LastGeneratedAt,
	}
}
