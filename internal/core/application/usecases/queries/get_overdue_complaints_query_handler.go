package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueComplaintsQueryHandler lists complaints past their SLA deadline.
// Feeds both the operations dashboard and the periodic SLA monitor.
type GetOverdueComplaintsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueComplaintsQueryHandler creates a handler for overdue listings.
func NewGetOverdueComplaintsQueryHandler(db *gorm.DB) GetOverdueComplaintsQueryHandler {
	return GetOverdueComplaintsQueryHandler{db: db}
}

// Handle returns all unresolved complaints whose deadline lies strictly
// before the query's instant, most overdue first.
func (h GetOverdueComplaintsQueryHandler) Handle(
	ctx context.Context, query GetOverdueComplaintsQuery,
) ([]GetOverdueComplaintsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	complaints := make([]GetOverdueComplaintsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reporter_id,
			category,
			subject,
			status,
			created_at,
			due_at
		FROM complaints
		WHERE resolved_at IS NULL
		  AND due_at < ?
		ORDER BY due_at
	`, query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c GetOverdueComplaintsQueryResponse
		var id, reporterID uuid.UUID

		err = rows.Scan(
			&id,
			&reporterID,
			&c.Category,
			&c.Subject,
			&c.Status,
			&c.CreatedAt,
			&c.DueAt,
		)
		if err != nil {
			return nil, err
		}

		if c.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if c.ReporterID, err = kernel.UUIDFromBytes(reporterID[:]); err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return complaints, nil
}
