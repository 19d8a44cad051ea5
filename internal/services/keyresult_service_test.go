package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
	"github.com/yukikurage/okr-tracker-api/internal/broadcast"
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"github.com/yukikurage/okr-tracker-api/internal/repository"
	"gorm.io/gorm"
)

func setupKeyResultService(t *testing.T) (*KeyResultService, *broadcast.Hub, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	hub := broadcast.NewHub()
	t.Cleanup(hub.Close)
	svc := NewKeyResultService(
		repository.NewKeyResultRepository(db),
		repository.NewObjectiveRepository(db),
		hub,
	)
	return svc, hub, db
}

func TestKeyResultService_ProgressComputation(t *testing.T) {
	tests := []struct {
		name     string
		target   *float64
		current  float64
		expected float64
	}{
		{"half way", floatPtr(100), 50, 50},
		{"capped at 100", floatPtr(100), 250, 100},
		{"nil target", nil, 50, 0},
		{"zero target", floatPtr(0), 50, 0},
		{"negative target", floatPtr(-10), 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kr := models.KeyResult{TargetValue: tt.target, CurrentValue: &tt.current}
			require.Equal(t, tt.expected, kr.ProgressPercentage())
		})
	}
}

// Completing the last key result completes the objective; un-completing it
// un-completes the objective again.
func TestKeyResultService_TwoWayCompletionSync(t *testing.T) {
	svc, _, db := setupKeyResultService(t)

	objective := createTestObjective(t, db, "Launch")
	kr1 := createTestKeyResult(t, db, objective.ID, "Docs", 100, 100)
	kr2 := createTestKeyResult(t, db, objective.ID, "Code", 100, 40)

	_, err := svc.Update(kr1.ID, UpdateKeyResultInput{CurrentValue: floatPtr(100)})
	require.NoError(t, err)

	var reloaded models.Objective
	require.NoError(t, db.First(&reloaded, objective.ID).Error)
	require.False(t, reloaded.IsComplete, "one key result still incomplete")

	_, err = svc.Update(kr2.ID, UpdateKeyResultInput{CurrentValue: floatPtr(100)})
	require.NoError(t, err)
	require.NoError(t, db.First(&reloaded, objective.ID).Error)
	require.True(t, reloaded.IsComplete, "all key results at 100%%")

	// Lowering one below target un-completes.
	_, err = svc.Update(kr2.ID, UpdateKeyResultInput{CurrentValue: floatPtr(60)})
	require.NoError(t, err)
	require.NoError(t, db.First(&reloaded, objective.ID).Error)
	require.False(t, reloaded.IsComplete)
}

func TestKeyResultService_ZeroKeyResultsNeverAutoCompleted(t *testing.T) {
	svc, _, db := setupKeyResultService(t)

	objective := createTestObjective(t, db, "Empty")
	kr := createTestKeyResult(t, db, objective.ID, "Only", 100, 100)

	require.NoError(t, svc.Delete(kr.ID))

	var reloaded models.Objective
	require.NoError(t, db.First(&reloaded, objective.ID).Error)
	require.False(t, reloaded.IsComplete)
}

func TestKeyResultService_UpdateBroadcasts(t *testing.T) {
	svc, hub, db := setupKeyResultService(t)

	objective := createTestObjective(t, db, "Broadcast")
	kr := createTestKeyResult(t, db, objective.ID, "Signal", 100, 10)

	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	_, err := svc.Update(kr.ID, UpdateKeyResultInput{CurrentValue: floatPtr(80)})
	require.NoError(t, err)

	select {
	case event := <-sub.C:
		require.Equal(t, broadcast.EventKeyResultUpdate, event.Type)
		require.Equal(t, objective.ID, event.ObjectiveID)
		require.Equal(t, kr.ID, event.KeyResultID)
		require.Equal(t, 80.0, event.Progress)
	default:
		t.Fatal("expected a broadcast event")
	}
}

func TestKeyResultService_CreateMissingObjective(t *testing.T) {
	svc, _, _ := setupKeyResultService(t)

	_, err := svc.Create(CreateKeyResultInput{Name: "Orphan", ObjectiveID: 777})
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestObjective_ProgressAndCelebration(t *testing.T) {
	objective := models.Objective{
		KeyResults: []models.KeyResult{
			{TargetValue: floatPtr(100), CurrentValue: floatPtr(100)},
			{TargetValue: floatPtr(100), CurrentValue: floatPtr(50)},
		},
	}
	require.Equal(t, 75.0, objective.ProgressPercentage())
	require.Equal(t, "hit_75", objective.CelebrationTrigger())

	empty := models.Objective{}
	require.Equal(t, 0.0, empty.ProgressPercentage())
	require.Equal(t, "", empty.CelebrationTrigger())
}

func floatPtr(f float64) *float64 { return &f }
