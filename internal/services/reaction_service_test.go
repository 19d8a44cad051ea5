package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
	"github.com/yukikurage/okr-tracker-api/internal/repository"
	"gorm.io/gorm"
)

func setupReactionService(t *testing.T) (*ReactionService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewReactionService(repository.NewReactionRepository(db)), db
}

// Toggling the same triple alternates add/remove; the third toggle creates a
// fresh row with a new id.
func TestReactionService_ToggleRoundTrip(t *testing.T) {
	svc, db := setupReactionService(t)

	user := createTestUser(t, db, "fay")
	objective := createTestObjective(t, db, "Morale")
	kr := createTestKeyResult(t, db, objective.ID, "Celebrate", 100, 0)

	status, reaction, err := svc.Toggle(kr.ID, user.ID, "🎉")
	require.NoError(t, err)
	require.Equal(t, ReactionAdded, status)
	require.NotNil(t, reaction)
	firstID := reaction.ID

	status, reaction, err = svc.Toggle(kr.ID, user.ID, "🎉")
	require.NoError(t, err)
	require.Equal(t, ReactionRemoved, status)
	require.Nil(t, reaction)

	status, reaction, err = svc.Toggle(kr.ID, user.ID, "🎉")
	require.NoError(t, err)
	require.Equal(t, ReactionAdded, status)
	require.NotNil(t, reaction)
	require.NotEqual(t, firstID, reaction.ID)
}

func TestReactionService_ToggleMissingKeyResult(t *testing.T) {
	svc, db := setupReactionService(t)
	user := createTestUser(t, db, "gil")

	_, _, err := svc.Toggle(999, user.ID, "👍")
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestReactionService_Summary(t *testing.T) {
	svc, db := setupReactionService(t)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	objective := createTestObjective(t, db, "Morale")
	kr := createTestKeyResult(t, db, objective.ID, "Celebrate", 100, 0)

	_, _, err := svc.Toggle(kr.ID, alice.ID, "🎉")
	require.NoError(t, err)
	_, _, err = svc.Toggle(kr.ID, bob.ID, "🎉")
	require.NoError(t, err)
	_, _, err = svc.Toggle(kr.ID, alice.ID, "👍")
	require.NoError(t, err)

	summary, err := svc.Summary(kr.ID)
	require.NoError(t, err)
	require.Equal(t, 3, summary.Total)
	require.Len(t, summary.Emojis, 2)

	byEmoji := map[string][]string{}
	for _, e := range summary.Emojis {
		for _, u := range e.Users {
			byEmoji[e.Emoji] = append(byEmoji[e.Emoji], u.Name)
		}
	}
	require.ElementsMatch(t, []string{"alice", "bob"}, byEmoji["🎉"])
	require.Equal(t, []string{"alice"}, byEmoji["👍"])
}
