package models

import "time"

type Objective struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsComplete  bool       `gorm:"not null;default:false" json:"is_complete"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	KeyResults []KeyResult          `gorm:"foreignKey:ObjectiveID;constraint:OnDelete:CASCADE" json:"key_results,omitempty"`
	Ownerships []ObjectiveOwnership `gorm:"foreignKey:ObjectiveID;constraint:OnDelete:CASCADE" json:"ownerships,omitempty"`
}

// ProgressPercentage is the arithmetic mean of the loaded key results'
// progress, 0.0 when the objective has none.
func (o *Objective) ProgressPercentage() float64 {
	if len(o.KeyResults) == 0 {
		return 0.0
	}
	var total float64
	for _, kr := range o.KeyResults {
		total += kr.ProgressPercentage()
	}
	return total / float64(len(o.KeyResults))
}

// CelebrationTrigger names the milestone the objective's progress has
// reached: "hit_100", "hit_75", "hit_50", or "" below 50%.
func (o *Objective) CelebrationTrigger() string {
	progress := o.ProgressPercentage()
	switch {
	case o.IsComplete || progress >= 100:
		return "hit_100"
	case progress >= 75:
		return "hit_75"
	case progress >= 50:
		return "hit_50"
	}
	return ""
}
