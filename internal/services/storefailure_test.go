package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
	"github.com/yukikurage/okr-tracker-api/internal/repository"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// A driver-level failure surfaces as an opaque StoreFailure with a
// correlation id, never as the raw driver error.
func TestService_StoreFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	driverErr := errors.New("connection reset by peer")
	mock.ExpectQuery("SELECT .* FROM `organizations`").WillReturnError(driverErr)

	svc := NewOrganizationService(repository.NewOrganizationRepository(db), nil)
	_, err = svc.Get(1)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeStoreFailure, appErr.Code)
	require.Equal(t, http.StatusInternalServerError, appErr.StatusCode())
	require.Equal(t, "storage operation failed", appErr.Message)
	require.NotEmpty(t, appErr.Details["correlation_id"])

	// The driver error stays wrapped for logging, not exposed in the message.
	require.ErrorIs(t, err, driverErr)
	require.NotContains(t, appErr.Message, "connection reset")

	require.NoError(t, mock.ExpectationsWereMet())
}
