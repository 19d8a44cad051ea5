package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Organization{},
		&models.User{},
		&models.Role{},
		&models.Group{},
		&models.UserOrganization{},
		&models.GroupOrganization{},
		&models.UserGroup{},
		&models.UserRole{},
		&models.GroupRole{},
		&models.GroupDelegate{},
		&models.Objective{},
		&models.KeyResult{},
		&models.ObjectiveOwnership{},
		&models.GroupCascadedObjective{},
		&models.Reaction{},
		&models.RecurringSchedule{},
		&models.GroupStreak{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{Name: name}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestRole(t *testing.T, db *gorm.DB, name string) *models.Role {
	t.Helper()
	role := &models.Role{Name: name}
	require.NoError(t, db.Create(role).Error)
	return role
}

func createTestGroup(t *testing.T, db *gorm.DB, name string) *models.Group {
	t.Helper()
	group := &models.Group{Name: name}
	require.NoError(t, db.Create(group).Error)
	return group
}

func createTestObjective(t *testing.T, db *gorm.DB, name string) *models.Objective {
	t.Helper()
	objective := &models.Objective{Name: name}
	require.NoError(t, db.Create(objective).Error)
	return objective
}

func createTestKeyResult(t *testing.T, db *gorm.DB, objectiveID uint64, name string, target, current float64) *models.KeyResult {
	t.Helper()
	kr := &models.KeyResult{
		Name:         name,
		ObjectiveID:  objectiveID,
		TargetValue:  &target,
		CurrentValue: &current,
	}
	require.NoError(t, db.Create(kr).Error)
	return kr
}
