package services

import (
	"errors"

	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
	"gorm.io/gorm"
)

// UpdateEntityInput is the partial-update input shared by organizations,
// users and roles. Nil fields are left unchanged.
type UpdateEntityInput struct {
	Name        *string
	Description *string
}

// classify passes taxonomy errors through unchanged and wraps anything else
// as an opaque store failure.
func classify(err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.StoreFailure(err)
}

// notFoundOr maps a record-not-found lookup error to the taxonomy NotFound
// for the given resource, classifying everything else.
func notFoundOr(err error, resource string, id uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(resource, id)
	}
	return classify(err)
}
