package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
	"github.com/yukikurage/okr-tracker-api/internal/models"
)

func seedOrganizations(t *testing.T, repo OrganizationRepository) {
	t.Helper()
	for _, org := range []models.Organization{
		{Name: "Zephyr", Description: "wind energy"},
		{Name: "Acme", Description: "general supplies"},
		{Name: "Mango", Description: "Fruit Logistics"},
	} {
		o := org
		require.NoError(t, repo.Create(&o))
	}
}

func TestList_OrderingWhitelist(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db)
	seedOrganizations(t, repo)

	orgs, total, err := repo.List(ListParams{Page: 1, PageSize: 10, Ordering: "-name"})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Equal(t, "Zephyr", orgs[0].Name)
	require.Equal(t, "Acme", orgs[2].Name)

	// Default order is by name ascending.
	orgs, _, err = repo.List(ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Equal(t, "Acme", orgs[0].Name)

	_, _, err = repo.List(ListParams{Page: 1, PageSize: 10, Ordering: "created_at"})
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeInvalidField, appErr.Code)
	require.Equal(t, "created_at", appErr.Details["field"])
}

func TestList_FilterWhitelist(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db)
	seedOrganizations(t, repo)

	// Case-insensitive substring match.
	orgs, total, err := repo.List(ListParams{
		Page: 1, PageSize: 10,
		Filters: map[string]string{"description": "FRUIT"},
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Mango", orgs[0].Name)

	_, _, err = repo.List(ListParams{
		Page: 1, PageSize: 10,
		Filters: map[string]string{"id": "1"},
	})
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeInvalidField, appErr.Code)
}

func TestList_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	for i := 0; i < 25; i++ {
		require.NoError(t, repo.Create(&models.User{Name: fmt.Sprintf("user-%02d", i)}))
	}

	users, total, err := repo.List(ListParams{Page: 2, PageSize: 10, Ordering: "name"})
	require.NoError(t, err)
	require.EqualValues(t, 25, total)
	require.Len(t, users, 10)
	require.Equal(t, "user-10", users[0].Name)

	users, _, err = repo.List(ListParams{Page: 3, PageSize: 10, Ordering: "name"})
	require.NoError(t, err)
	require.Len(t, users, 5)

	// Out-of-range page sizes fall back to the default.
	users, _, err = repo.List(ListParams{Page: 1, PageSize: 5000})
	require.NoError(t, err)
	require.Len(t, users, 10)
}
