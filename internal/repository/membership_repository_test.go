package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
	"github.com/yukikurage/okr-tracker-api/internal/models"
)

// The add/remove/list contract is identical across the five edge sets; the
// user-group edge stands in for all of them, with spot checks on the others.
func TestMembershipRepository_EdgeContract(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMembershipRepository(db)

	user := &models.User{Name: "alice"}
	require.NoError(t, db.Create(user).Error)
	group := &models.Group{Name: "Platform"}
	require.NoError(t, db.Create(group).Error)

	// Missing endpoint entity.
	err := repo.AddUserToGroup(999, group.ID)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeNotFound, appErr.Code)

	// First add succeeds, duplicate conflicts.
	require.NoError(t, repo.AddUserToGroup(user.ID, group.ID))
	err = repo.AddUserToGroup(user.ID, group.ID)
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeConflict, appErr.Code)

	users, err := repo.GetGroupUsers(group.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "alice", users[0].Name)

	groups, err := repo.GetUserGroups(user.ID)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	// Remove succeeds once, then the edge is gone.
	require.NoError(t, repo.RemoveUserFromGroup(user.ID, group.ID))
	err = repo.RemoveUserFromGroup(user.ID, group.ID)
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeNotFound, appErr.Code)

	// Listing for a missing entity is NotFound, not an empty list.
	_, err = repo.GetGroupUsers(4242)
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestMembershipRepository_OrganizationEdges(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMembershipRepository(db)

	org := &models.Organization{Name: "Acme"}
	require.NoError(t, db.Create(org).Error)
	user := &models.User{Name: "bob"}
	require.NoError(t, db.Create(user).Error)
	group := &models.Group{Name: "Sales"}
	require.NoError(t, db.Create(group).Error)

	require.NoError(t, repo.AddUserToOrganization(user.ID, org.ID))
	require.NoError(t, repo.AddGroupToOrganization(group.ID, org.ID))

	users, err := repo.GetOrganizationUsers(org.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)

	groups, err := repo.GetOrganizationGroups(org.ID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
}

func TestMembershipRepository_RolesAndDelegates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMembershipRepository(db)

	user := &models.User{Name: "carol"}
	require.NoError(t, db.Create(user).Error)
	role := &models.Role{Name: "Reviewer"}
	require.NoError(t, db.Create(role).Error)
	group := &models.Group{Name: "QA"}
	require.NoError(t, db.Create(group).Error)

	require.NoError(t, repo.AddRoleToUser(user.ID, role.ID))
	require.NoError(t, repo.AddRoleToGroup(group.ID, role.ID))
	require.NoError(t, repo.AddDelegateToGroup(group.ID, user.ID))

	roleUsers, err := repo.GetRoleUsers(role.ID)
	require.NoError(t, err)
	require.Len(t, roleUsers, 1)

	roleGroups, err := repo.GetRoleGroups(role.ID)
	require.NoError(t, err)
	require.Len(t, roleGroups, 1)

	delegates, err := repo.GetGroupDelegates(group.ID)
	require.NoError(t, err)
	require.Len(t, delegates, 1)

	require.NoError(t, repo.RemoveDelegateFromGroup(group.ID, user.ID))
	delegates, err = repo.GetGroupDelegates(group.ID)
	require.NoError(t, err)
	require.Empty(t, delegates)
}

func TestMembershipRepository_CascadedObjectives(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMembershipRepository(db)

	parent := &models.Group{Name: "Org-wide"}
	require.NoError(t, db.Create(parent).Error)
	child := &models.Group{Name: "Team", ParentID: &parent.ID}
	require.NoError(t, db.Create(child).Error)
	unrelated := &models.Group{Name: "Other"}
	require.NoError(t, db.Create(unrelated).Error)
	objective := &models.Objective{Name: "Adopt OKRs"}
	require.NoError(t, db.Create(objective).Error)

	// Target must actually be a child of the parent.
	_, err := repo.CascadeObjectiveToChild(parent.ID, unrelated.ID, objective.ID)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeValidation, appErr.Code)

	cascaded, err := repo.CascadeObjectiveToChild(parent.ID, child.ID, objective.ID)
	require.NoError(t, err)
	require.True(t, cascaded.IsActive)

	_, err = repo.CascadeObjectiveToChild(parent.ID, child.ID, objective.ID)
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeConflict, appErr.Code)

	toggled, err := repo.ToggleCascadedObjective(cascaded.ID, false)
	require.NoError(t, err)
	require.False(t, toggled.IsActive)

	forChild, err := repo.GetCascadedObjectivesForGroup(child.ID)
	require.NoError(t, err)
	require.Len(t, forChild, 1)

	require.NoError(t, repo.RemoveCascadedObjective(parent.ID, child.ID, objective.ID))
	err = repo.RemoveCascadedObjective(parent.ID, child.ID, objective.ID)
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
