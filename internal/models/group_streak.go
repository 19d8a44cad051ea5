package models

import "time"

// GroupStreak counts consecutive calendar days of qualifying activity for a
// group. One row per group.
type GroupStreak struct {
	ID               uint64     `gorm:"primarykey" json:"id"`
	GroupID          uint64     `gorm:"not null;uniqueIndex" json:"group_id"`
	CurrentStreak    int        `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak    int        `gorm:"not null;default:0" json:"longest_streak"`
	LastActivityDate *time.Time `json:"last_activity_date"`
	StreakStartedAt  *time.Time `json:"streak_started_at"`

	// Relations
	Group *Group `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"group,omitempty"`
}
