package repository

import (
	"fmt"
	"strings"

	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
	"github.com/yukikurage/okr-tracker-api/internal/constants"
	"gorm.io/gorm"
)

// listDefinition is the per-entity whitelist for list queries. Field names
// map to column references; nothing outside the map ever reaches query
// construction.
type listDefinition struct {
	orderFields  map[string]string
	filterFields map[string]string
	defaultOrder string
}

func (d listDefinition) orderFieldNames() []string {
	names := make([]string, 0, len(d.orderFields))
	for name := range d.orderFields {
		names = append(names, name)
	}
	return names
}

func (d listDefinition) filterFieldNames() []string {
	names := make([]string, 0, len(d.filterFields))
	for name := range d.filterFields {
		names = append(names, name)
	}
	return names
}

// applyFilters adds a case-insensitive substring condition per filter.
func (d listDefinition) applyFilters(query *gorm.DB, filters map[string]string) (*gorm.DB, error) {
	for field, value := range filters {
		if value == "" {
			continue
		}
		column, ok := d.filterFields[field]
		if !ok {
			return nil, apperrors.InvalidField(field, "filtering", d.filterFieldNames())
		}
		query = query.Where(fmt.Sprintf("LOWER(%s) LIKE ?", column), "%"+strings.ToLower(value)+"%")
	}
	return query, nil
}

// applyOrdering validates the "field" / "-field" ordering expression and
// applies it, falling back to the default order.
func (d listDefinition) applyOrdering(query *gorm.DB, ordering string) (*gorm.DB, error) {
	if ordering == "" {
		return query.Order(d.defaultOrder), nil
	}

	desc := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")
	column, ok := d.orderFields[field]
	if !ok {
		return nil, apperrors.InvalidField(field, "ordering", d.orderFieldNames())
	}
	if desc {
		return query.Order(column + " DESC"), nil
	}
	return query.Order(column), nil
}

// paginate clamps pagination parameters and applies offset/limit.
func paginate(query *gorm.DB, page, pageSize int) *gorm.DB {
	if page < constants.DefaultPage {
		page = constants.DefaultPage
	}
	if pageSize <= 0 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}
	return query.Offset((page - 1) * pageSize).Limit(pageSize)
}

// listEntities runs the shared count-then-page list query for an entity.
func listEntities[T any](db *gorm.DB, def listDefinition, params ListParams, preload ...string) ([]T, int64, error) {
	var model T
	query := db.Model(&model)

	query, err := def.applyFilters(query, params.Filters)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query, err = def.applyOrdering(query, params.Ordering)
	if err != nil {
		return nil, 0, err
	}

	for _, p := range preload {
		query = query.Preload(p)
	}

	var items []T
	if err := paginate(query, params.Page, params.PageSize).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
