package repository

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
