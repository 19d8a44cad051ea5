package models

import "time"

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Valid reports whether f is a known cadence.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// RecurringSchedule regenerates its key result on a cadence once the key
// result is completed, optionally rotating an assignee through RotationUsers.
// One schedule per key result.
type RecurringSchedule struct {
	ID                   uint64     `gorm:"primarykey" json:"id"`
	KeyResultID          uint64     `gorm:"not null;uniqueIndex" json:"key_result_id"`
	Frequency            Frequency  `gorm:"type:varchar(20);not null" json:"frequency"`
	RotationEnabled      bool       `gorm:"not null;default:false" json:"rotation_enabled"`
	RotationUsers        []uint64   `gorm:"serializer:json" json:"rotation_users"`
	CurrentRotationIndex int        `gorm:"not null;default:0" json:"current_rotation_index"`
	NextDueDate          time.Time  `gorm:"not null" json:"next_due_date"`
	LastGeneratedAt      *time.Time `json:"last_generated_at"`

	// Relations
	KeyResult *KeyResult `gorm:"foreignKey:KeyResultID;constraint:OnDelete:CASCADE" json:"key_result,omitempty"`
}

// CurrentAssignee returns the rotating assignee, or 0 when rotation is off or
// the rotation list is empty. A stored index beyond the end of the list is
// clamped to the first entry in case the list shrank.
func (s *RecurringSchedule) CurrentAssignee() uint64 {
	if !s.RotationEnabled || len(s.RotationUsers) == 0 {
		return 0
	}
	if s.CurrentRotationIndex >= len(s.RotationUsers) {
		return s.RotationUsers[0]
	}
	return s.RotationUsers[s.CurrentRotationIndex]
}
