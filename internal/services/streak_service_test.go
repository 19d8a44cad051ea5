package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
	"github.com/yukikurage/okr-tracker-api/internal/repository"
	"gorm.io/gorm"
)

func setupStreakService(t *testing.T) (*StreakService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewStreakService(repository.NewStreakRepository(db))
	return svc, db
}

func setClock(svc *StreakService, day time.Time) {
	svc.now = func() time.Time { return day }
}

func TestStreakService_GetStreakCreatesRow(t *testing.T) {
	svc, db := setupStreakService(t)
	group := createTestGroup(t, db, "Core")

	streak, err := svc.GetStreak(group.ID)
	require.NoError(t, err)
	require.Zero(t, streak.CurrentStreak)
	require.Zero(t, streak.LongestStreak)
	require.False(t, streak.IsActiveToday)

	_, err = svc.GetStreak(4242)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestStreakService_RecordActivityStateMachine(t *testing.T) {
	svc, db := setupStreakService(t)
	group := createTestGroup(t, db, "Core")

	day1 := time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)

	// First-ever activity.
	setClock(svc, day1)
	streak, increased, err := svc.RecordActivity(group.ID)
	require.NoError(t, err)
	require.True(t, increased)
	require.Equal(t, 1, streak.CurrentStreak)
	require.Equal(t, 1, streak.LongestStreak)
	require.True(t, streak.IsActiveToday)

	// Same day again: idempotent.
	streak, increased, err = svc.RecordActivity(group.ID)
	require.NoError(t, err)
	require.False(t, increased)
	require.Equal(t, 1, streak.CurrentStreak)

	// Next day extends.
	setClock(svc, day1.AddDate(0, 0, 1))
	streak, increased, err = svc.RecordActivity(group.ID)
	require.NoError(t, err)
	require.True(t, increased)
	require.Equal(t, 2, streak.CurrentStreak)
	require.Equal(t, 2, streak.LongestStreak)

	// Three-day gap resets to 1, longest preserved.
	setClock(svc, day1.AddDate(0, 0, 5))
	streak, increased, err = svc.RecordActivity(group.ID)
	require.NoError(t, err)
	require.True(t, increased)
	require.Equal(t, 1, streak.CurrentStreak)
	require.Equal(t, 2, streak.LongestStreak)
}

// The nightly reset breaks streaks idle since before yesterday but spares a
// group active exactly yesterday, which can still extend today.
func TestStreakService_ResetStaleStreaks(t *testing.T) {
	svc, db := setupStreakService(t)
	staleGroup := createTestGroup(t, db, "Idle")
	freshGroup := createTestGroup(t, db, "Active")

	base := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)

	setClock(svc, base.AddDate(0, 0, -3))
	_, _, err := svc.RecordActivity(staleGroup.ID)
	require.NoError(t, err)

	setClock(svc, base.AddDate(0, 0, -1))
	_, _, err = svc.RecordActivity(freshGroup.ID)
	require.NoError(t, err)

	setClock(svc, base)
	reset, err := svc.ResetStaleStreaks()
	require.NoError(t, err)
	require.Equal(t, 1, reset)

	stale, err := svc.GetStreak(staleGroup.ID)
	require.NoError(t, err)
	require.Zero(t, stale.CurrentStreak)
	require.Equal(t, 1, stale.LongestStreak)

	fresh, err := svc.GetStreak(freshGroup.ID)
	require.NoError(t, err)
	require.Equal(t, 1, fresh.CurrentStreak)
}

// A second reset run finds nothing: already-broken streaks are skipped.
func TestStreakService_ResetIdempotent(t *testing.T) {
	svc, db := setupStreakService(t)
	group := createTestGroup(t, db, "Idle")

	base := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	setClock(svc, base.AddDate(0, 0, -4))
	_, _, err := svc.RecordActivity(group.ID)
	require.NoError(t, err)

	setClock(svc, base)
	reset, err := svc.ResetStaleStreaks()
	require.NoError(t, err)
	require.Equal(t, 1, reset)

	reset, err = svc.ResetStaleStreaks()
	require.NoError(t, err)
	require.Zero(t, reset)
}
