package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"github.com/yukikurage/okr-tracker-api/internal/repository"
)

func TestOwnershipService_AddAndListOwnerships(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOwnershipService(repository.NewOwnershipRepository(db))

	user := createTestUser(t, db, "alice")
	objective := createTestObjective(t, db, "Grow revenue")

	ownership, err := svc.AddOwnership(objective.ID, models.OwnerTypeUser, user.ID)
	require.NoError(t, err)
	require.NotZero(t, ownership.ID)

	// Duplicate triple conflicts.
	_, err = svc.AddOwnership(objective.ID, models.OwnerTypeUser, user.ID)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeConflict, appErr.Code)

	listed, err := svc.ListOwnerships(objective.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, "alice", listed[0].OwnerName)
}

func TestOwnershipService_AddOwnershipMissingOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOwnershipService(repository.NewOwnershipRepository(db))

	objective := createTestObjective(t, db, "Objective")

	_, err := svc.AddOwnership(objective.ID, models.OwnerTypeRole, 9999)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeNotFound, appErr.Code)

	_, err = svc.AddOwnership(objective.ID, "machine", 1)
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeValidation, appErr.Code)
}

func TestOwnershipService_RemoveOwnershipMissingEdge(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOwnershipService(repository.NewOwnershipRepository(db))

	err := svc.RemoveOwnership(1, models.OwnerTypeUser, 1)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

// A user in a role that owns an objective sees it under that role's bucket,
// not as an individual assignment.
func TestOwnershipService_ResolveThroughRoleInGroup(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOwnershipService(repository.NewOwnershipRepository(db))
	membershipRepo := repository.NewMembershipRepository(db)

	user := createTestUser(t, db, "bob")
	role := createTestRole(t, db, "Engineering Lead")
	group := createTestGroup(t, db, "Platform")
	objective := createTestObjective(t, db, "Ship v2")
	createTestKeyResult(t, db, objective.ID, "Deploy", 100, 50)

	require.NoError(t, membershipRepo.AddRoleToUser(user.ID, role.ID))
	require.NoError(t, membershipRepo.AddUserToGroup(user.ID, group.ID))

	_, err := svc.AddOwnership(objective.ID, models.OwnerTypeRole, role.ID)
	require.NoError(t, err)

	assignments, err := svc.ResolveUserAssignments(user.ID)
	require.NoError(t, err)

	require.Empty(t, assignments.Individual)
	require.Empty(t, assignments.ByGroup)
	require.Len(t, assignments.ByRole["Engineering Lead"], 1)
	require.Equal(t, objective.ID, assignments.ByRole["Engineering Lead"][0].ID)
	require.NotEmpty(t, assignments.ByRole["Engineering Lead"][0].KeyResults)
}

// An objective owned both directly and through a group appears in both
// buckets without cross-bucket de-duplication.
func TestOwnershipService_ResolveMultiGrant(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOwnershipService(repository.NewOwnershipRepository(db))
	membershipRepo := repository.NewMembershipRepository(db)

	user := createTestUser(t, db, "carol")
	group := createTestGroup(t, db, "Design")
	objective := createTestObjective(t, db, "Refresh brand")

	require.NoError(t, membershipRepo.AddUserToGroup(user.ID, group.ID))

	_, err := svc.AddOwnership(objective.ID, models.OwnerTypeUser, user.ID)
	require.NoError(t, err)
	_, err = svc.AddOwnership(objective.ID, models.OwnerTypeGroup, group.ID)
	require.NoError(t, err)

	assignments, err := svc.ResolveUserAssignments(user.ID)
	require.NoError(t, err)

	require.Len(t, assignments.Individual, 1)
	require.Len(t, assignments.ByGroup["Design"], 1)
	require.Equal(t, objective.ID, assignments.Individual[0].ID)
	require.Equal(t, objective.ID, assignments.ByGroup["Design"][0].ID)
}

func TestOwnershipService_ResolveNoAssignments(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOwnershipService(repository.NewOwnershipRepository(db))

	user := createTestUser(t, db, "dave")

	assignments, err := svc.ResolveUserAssignments(user.ID)
	require.NoError(t, err)
	require.Empty(t, assignments.Individual)
	require.Empty(t, assignments.ByRole)
	require.Empty(t, assignments.ByGroup)
}

func TestOwnershipService_ResolveMissingUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOwnershipService(repository.NewOwnershipRepository(db))

	_, err := svc.ResolveUserAssignments(12345)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
