package v1

import (
	"github.com/alocar/backend/internal/uuid"
	"golang.org/x/exp/slices"
)

// defaultLimit is the number of resources returned by list endpoints
// when no limit is set.
const defaultLimit = 50

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// paginate returns the page of items selected by offset and limit.
//
// limit is only applied if "Limit" is in setFields, otherwise defaultLimit is used.
func paginate[T any](items []T, offset uint, limit int, setFields []string) ([]T, Pagination) {
	if !slices.Contains(setFields, "Limit") {
		limit = defaultLimit
	}

	total := len(items)
	start := min(int(offset), total)
	end := min(start+limit, total)

	page := items[start:end]
	return page, Pagination{
		Count:  len(page),
		Offset: offset,
		Limit:  limit,
		Total:  int64(total),
	}
}
