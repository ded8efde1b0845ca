package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListStatusesQueryHandler lists the status catalog, the reference data
// admin tooling renders when building status dropdowns.
type ListStatusesQueryHandler struct {
	db *gorm.DB
}

// NewListStatusesQueryHandler creates a handler for status catalog queries.
func NewListStatusesQueryHandler(db *gorm.DB) ListStatusesQueryHandler {
	return ListStatusesQueryHandler{db: db}
}

// Handle returns every catalog entry ordered by name.
func (h ListStatusesQueryHandler) Handle(
	ctx context.Context,
	query ListStatusesQuery,
) ([]StatusResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]StatusResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT name, label
		FROM statuses
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp StatusResponse
		if scanErr := rows.Scan(&resp.Name, &resp.Label); scanErr != nil {
			return nil, scanErr
		}
		statuses = append(statuses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}
