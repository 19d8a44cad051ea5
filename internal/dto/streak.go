package dto

import (
	"time"

	"github.com/yukikurage/okr-tracker-api/internal/models"
)

// StreakDTO represents a group's activity streak in API responses
type StreakDTO struct {
	GroupID          uint64     `json:"group_id"`
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	LastActivityDate *time.Time `json:"last_activity_date"`
	StreakStartedAt  *time.Time `json:"streak_started_at"`
	IsActiveToday    bool       `json:"is_active_today"`
	Message          string     `json:"message,omitempty"`
}

// RecordActivityResponse reports whether recording today's activity moved
// the streak.
type RecordActivityResponse struct {
	Streak    StreakDTO `json:"streak"`
	Increased bool      `json:"increased"`
}

// ResetStaleResponse reports how many streaks the reset batch job broke
type ResetStaleResponse struct {
	Reset int `json:"reset"`
}

// ToStreakDTO converts a GroupStreak model; isActiveToday and message are
// computed by the service against its clock.
func ToStreakDTO(streak models.GroupStreak, isActiveToday bool, message string) StreakDTO {
	return StreakDTO{
		GroupID:          streak.GroupID,
		CurrentStreak:    streak.CurrentStreak,
		LongestStreak:    streak.LongestStreak,
		LastActivityDate: streak.LastActivityDate,
		StreakStartedAt:  streak.StreakStartedAt,
		IsActiveToday:    isActiveToday,
		Message:          message,
	}
}
