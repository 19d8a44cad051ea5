package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"github.com/yukikurage/okr-tracker-api/internal/repository"
	"gorm.io/gorm"
)

func setupRecurringService(t *testing.T, now time.Time) (*RecurringService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewRecurringService(
		repository.NewRecurringRepository(db),
		repository.NewKeyResultRepository(db),
		repository.NewUserRepository(db),
	)
	svc.now = func() time.Time { return now }
	return svc, db
}

func TestRecurringService_CreateValidation(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, db := setupRecurringService(t, now)

	objective := createTestObjective(t, db, "Ops")
	kr := createTestKeyResult(t, db, objective.ID, "Weekly report", 100, 0)

	_, err := svc.Create(CreateRecurringScheduleInput{
		KeyResultID: kr.ID,
		Frequency:   "hourly",
		NextDueDate: now,
	})
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeValidation, appErr.Code)

	_, err = svc.Create(CreateRecurringScheduleInput{
		KeyResultID: 999,
		Frequency:   models.FrequencyDaily,
		NextDueDate: now,
	})
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeNotFound, appErr.Code)

	_, err = svc.Create(CreateRecurringScheduleInput{
		KeyResultID: kr.ID,
		Frequency:   models.FrequencyWeekly,
		NextDueDate: now,
	})
	require.NoError(t, err)

	// One schedule per key result.
	_, err = svc.Create(CreateRecurringScheduleInput{
		KeyResultID: kr.ID,
		Frequency:   models.FrequencyDaily,
		NextDueDate: now,
	})
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeConflict, appErr.Code)
}

// A past-due schedule whose key result is still incomplete is left alone.
func TestRecurringService_RegenerateSkipsIncomplete(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, db := setupRecurringService(t, now)

	objective := createTestObjective(t, db, "Ops")
	kr := createTestKeyResult(t, db, objective.ID, "Standup notes", 100, 30)
	dueDate := now.AddDate(0, 0, -2)

	_, err := svc.Create(CreateRecurringScheduleInput{
		KeyResultID: kr.ID,
		Frequency:   models.FrequencyDaily,
		NextDueDate: dueDate,
	})
	require.NoError(t, err)

	regenerated, rotated, err := svc.RegenerateCompleted()
	require.NoError(t, err)
	require.Zero(t, regenerated)
	require.Zero(t, rotated)

	schedule, err := svc.Get(kr.ID)
	require.NoError(t, err)
	require.True(t, schedule.NextDueDate.Equal(dueDate), "due date untouched")
	require.Nil(t, schedule.LastGeneratedAt)
}

func TestRecurringService_RegenerateResetsAndAdvances(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, db := setupRecurringService(t, now)

	objective := createTestObjective(t, db, "Ops")
	kr := createTestKeyResult(t, db, objective.ID, "Retro", 100, 100)
	kr.IsComplete = true
	require.NoError(t, db.Save(kr).Error)

	dueDate := now.AddDate(0, 0, -1)
	_, err := svc.Create(CreateRecurringScheduleInput{
		KeyResultID: kr.ID,
		Frequency:   models.FrequencyWeekly,
		NextDueDate: dueDate,
	})
	require.NoError(t, err)

	regenerated, rotated, err := svc.RegenerateCompleted()
	require.NoError(t, err)
	require.Equal(t, 1, regenerated)
	require.Zero(t, rotated)

	var reloaded models.KeyResult
	require.NoError(t, db.First(&reloaded, kr.ID).Error)
	require.False(t, reloaded.IsComplete)
	require.NotNil(t, reloaded.CurrentValue)
	require.Zero(t, *reloaded.CurrentValue)

	schedule, err := svc.Get(kr.ID)
	require.NoError(t, err)
	require.True(t, schedule.NextDueDate.Equal(dateOnly(now).AddDate(0, 0, 7)), "next due date anchors on today")
	require.NotNil(t, schedule.LastGeneratedAt)
}

// A schedule overdue by several cadences regenerates into the future, not
// one offset past its stale stored date.
func TestRecurringService_RegenerateOverdueAnchorsOnToday(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, db := setupRecurringService(t, now)

	objective := createTestObjective(t, db, "Ops")
	kr := createTestKeyResult(t, db, objective.ID, "Daily log", 100, 100)
	kr.IsComplete = true
	require.NoError(t, db.Save(kr).Error)

	_, err := svc.Create(CreateRecurringScheduleInput{
		KeyResultID: kr.ID,
		Frequency:   models.FrequencyDaily,
		NextDueDate: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	regenerated, _, err := svc.RegenerateCompleted()
	require.NoError(t, err)
	require.Equal(t, 1, regenerated)

	schedule, err := svc.Get(kr.ID)
	require.NoError(t, err)
	require.True(t, schedule.NextDueDate.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)))
	require.True(t, schedule.NextDueDate.After(now), "regenerated schedule is no longer past due")
}

// Rotation index wraps: [A, B, C] at index 2 rotates back to 0.
func TestRecurringService_RotationWraps(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, db := setupRecurringService(t, now)

	a := createTestUser(t, db, "a")
	b := createTestUser(t, db, "b")
	c := createTestUser(t, db, "c")

	objective := createTestObjective(t, db, "Rotation")
	kr := createTestKeyResult(t, db, objective.ID, "On-call summary", 100, 100)
	kr.IsComplete = true
	require.NoError(t, db.Save(kr).Error)

	_, err := svc.Create(CreateRecurringScheduleInput{
		KeyResultID:     kr.ID,
		Frequency:       models.FrequencyDaily,
		NextDueDate:     now.AddDate(0, 0, -1),
		RotationEnabled: true,
		RotationUsers:   []uint64{a.ID, b.ID, c.ID},
	})
	require.NoError(t, err)

	schedule, err := svc.Get(kr.ID)
	require.NoError(t, err)
	schedule.CurrentRotationIndex = 2
	require.NoError(t, db.Save(schedule).Error)

	regenerated, rotated, err := svc.RegenerateCompleted()
	require.NoError(t, err)
	require.Equal(t, 1, regenerated)
	require.Equal(t, 1, rotated)

	schedule, err = svc.Get(kr.ID)
	require.NoError(t, err)
	require.Zero(t, schedule.CurrentRotationIndex)
	require.Equal(t, a.ID, schedule.CurrentAssignee())
}

func TestRecurringSchedule_CurrentAssigneeClamping(t *testing.T) {
	schedule := models.RecurringSchedule{
		RotationEnabled:      true,
		RotationUsers:        []uint64{11, 22},
		CurrentRotationIndex: 5,
	}
	require.Equal(t, uint64(11), schedule.CurrentAssignee(), "out-of-bounds index clamps to first")

	schedule.RotationEnabled = false
	require.Zero(t, schedule.CurrentAssignee())

	schedule.RotationEnabled = true
	schedule.RotationUsers = nil
	require.Zero(t, schedule.CurrentAssignee())
}

func TestRecurringService_DueToday(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, db := setupRecurringService(t, now)

	assignee := createTestUser(t, db, "erin")
	objective := createTestObjective(t, db, "Reporting")
	due := createTestKeyResult(t, db, objective.ID, "Monthly digest", 100, 0)
	notDue := createTestKeyResult(t, db, objective.ID, "Quarterly review", 100, 0)

	_, err := svc.Create(CreateRecurringScheduleInput{
		KeyResultID:     due.ID,
		Frequency:       models.FrequencyMonthly,
		NextDueDate:     now.AddDate(0, 0, -1),
		RotationEnabled: true,
		RotationUsers:   []uint64{assignee.ID},
	})
	require.NoError(t, err)
	_, err = svc.Create(CreateRecurringScheduleInput{
		KeyResultID: notDue.ID,
		Frequency:   models.FrequencyMonthly,
		NextDueDate: now.AddDate(0, 0, 10),
	})
	require.NoError(t, err)

	items, err := svc.DueToday()
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, due.ID, items[0].KeyResultID)
	require.Equal(t, "Monthly digest", items[0].KeyResultName)
	require.Equal(t, "Reporting", items[0].ObjectiveName)
	require.Equal(t, assignee.ID, items[0].AssigneeID)
	require.Equal(t, "erin", items[0].AssigneeName)
}

func TestAdvanceDueDate(t *testing.T) {
	from := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	require.Equal(t, from.AddDate(0, 0, 1), advanceDueDate(from, models.FrequencyDaily))
	require.Equal(t, from.AddDate(0, 0, 7), advanceDueDate(from, models.FrequencyWeekly))
	// Monthly is a fixed 30-day offset, not calendar-month arithmetic.
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), advanceDueDate(from, models.FrequencyMonthly))
}
