package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/okr-tracker-api/internal/constants"
	"github.com/yukikurage/okr-tracker-api/internal/repository"
)

// GetListParams extracts pagination, ordering and filter parameters from the
// request. filterKeys names the query parameters forwarded as substring
// filters; validity of ordering and filter fields is checked by the
// repository against its whitelist.
func GetListParams(c *gin.Context, filterKeys ...string) repository.ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))

	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	filters := make(map[string]string)
	for _, key := range filterKeys {
		if value := c.Query(key); value != "" {
			filters[key] = value
		}
	}

	return repository.ListParams{
		Page:     page,
		PageSize: pageSize,
		Ordering: c.Query("ordering"),
		Filters:  filters,
	}
}
