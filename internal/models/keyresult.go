package models

import "time"

type KeyResult struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Description  string     `gorm:"type:text" json:"description"`
	ObjectiveID  uint64     `gorm:"not null;index" json:"objective_id"`
	TargetValue  *float64   `gorm:"default:100" json:"target_value"`
	CurrentValue *float64   `gorm:"default:0" json:"current_value"`
	Unit         *string    `gorm:"type:varchar(20);default:'%'" json:"unit"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsComplete   bool       `gorm:"not null;default:false" json:"is_complete"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Objective *Objective `gorm:"foreignKey:ObjectiveID" json:"objective,omitempty"`
}

// ProgressPercentage computes current/target capped at 100. A missing, zero
// or negative target yields 0. Never persisted, always recomputed on read.
func (kr *KeyResult) ProgressPercentage() float64 {
	if kr.TargetValue == nil || *kr.TargetValue <= 0 {
		return 0.0
	}
	current := 0.0
	if kr.CurrentValue != nil {
		current = *kr.CurrentValue
	}
	progress := current / *kr.TargetValue * 100
	if progress > 100 {
		return 100.0
	}
	return progress
}

// EffectiveStartDate is the key result's own start date, falling back to the
// objective's when unset. Requires Objective to be preloaded for fallback.
func (kr *KeyResult) EffectiveStartDate() *time.Time {
	if kr.StartDate != nil {
		return kr.StartDate
	}
	if kr.Objective != nil {
		return kr.Objective.StartDate
	}
	return nil
}

// EffectiveEndDate mirrors EffectiveStartDate for the end date.
func (kr *KeyResult) EffectiveEndDate() *time.Time {
	if kr.EndDate != nil {
		return kr.EndDate
	}
	if kr.Objective != nil {
		return kr.Objective.EndDate
	}
	return nil
}
