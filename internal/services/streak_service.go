package services

import (
	"fmt"
	"time"

	"github.com/yukikurage/okr-tracker-api/internal/dto"
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"github.com/yukikurage/okr-tracker-api/internal/repository"
)

// StreakService tracks consecutive calendar days of group activity
type StreakService struct {
	streakRepo repository.StreakRepository

	now func() time.Time
}

// NewStreakService creates a new StreakService
func NewStreakService(streakRepo repository.StreakRepository) *StreakService {
	return &StreakService{streakRepo: streakRepo, now: time.Now}
}

// GetStreak returns the group's streak, creating a zeroed row on first
// access.
func (s *StreakService) GetStreak(groupID uint64) (*dto.StreakDTO, error) {
	streak, err := s.streakRepo.GetOrCreate(groupID)
	if err != nil {
		return nil, classify(err)
	}
	result := s.toDTO(streak)
	return &result, nil
}

// RecordActivity advances the group's streak for today. Idempotent per
// calendar day: a second call on the same day changes nothing. A one-day
// gap extends the streak, anything larger restarts it at 1 while longest is
// preserved.
func (s *StreakService) RecordActivity(groupID uint64) (*dto.StreakDTO, bool, error) {
	streak, err := s.streakRepo.GetOrCreate(groupID)
	if err != nil {
		return nil, false, classify(err)
	}

	today := dateOnly(s.now())
	increased := false

	switch {
	case streak.LastActivityDate == nil:
		streak.CurrentStreak = 1
		streak.LongestStreak = 1
		streak.LastActivityDate = &today
		streak.StreakStartedAt = &today
		increased = true

	case dateOnly(*streak.LastActivityDate).Equal(today):
		// Already counted today.

	case dateOnly(*streak.LastActivityDate).Equal(today.AddDate(0, 0, -1)):
		streak.CurrentStreak++
		if streak.CurrentStreak > streak.LongestStreak {
			streak.LongestStreak = streak.CurrentStreak
		}
		streak.LastActivityDate = &today
		increased = true

	default:
		streak.CurrentStreak = 1
		streak.LastActivityDate = &today
		streak.StreakStartedAt = &today
		increased = true
	}

	if increased {
		if err := s.streakRepo.Save(streak); err != nil {
			return nil, false, classify(err)
		}
	}
	result := s.toDTO(streak)
	return &result, increased, nil
}

// ResetStaleStreaks is the nightly batch job: every streak whose last
// activity is older than yesterday is broken. Groups active exactly
// yesterday keep their streak, since they can still extend it today.
func (s *StreakService) ResetStaleStreaks() (int, error) {
	yesterday := dateOnly(s.now()).AddDate(0, 0, -1)
	stale, err := s.streakRepo.FindStale(yesterday)
	if err != nil {
		return 0, classify(err)
	}
	reset := 0
	for i := range stale {
		streak := &stale[i]
		streak.CurrentStreak = 0
		streak.StreakStartedAt = nil
		if err := s.streakRepo.Save(streak); err != nil {
			return reset, classify(err)
		}
		reset++
	}
	return reset, nil
}

func (s *StreakService) toDTO(streak *models.GroupStreak) dto.StreakDTO {
	isActiveToday := streak.LastActivityDate != nil &&
		dateOnly(*streak.LastActivityDate).Equal(dateOnly(s.now()))
	return dto.ToStreakDTO(*streak, isActiveToday, streakMessage(streak, isActiveToday))
}

func streakMessage(streak *models.GroupStreak, isActiveToday bool) string {
	switch {
	case streak.CurrentStreak == 0:
		return "No active streak. Record some progress to get started!"
	case isActiveToday:
		return fmt.Sprintf("%d day streak! Keep it up!", streak.CurrentStreak)
	default:
		return fmt.Sprintf("%d day streak. Record progress today to keep it alive!", streak.CurrentStreak)
	}
}

// dateOnly truncates to midnight UTC so calendar-day comparisons ignore the
// time of day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
