package ports

import (
	"context"

	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/kernel"
)

// ComplaintRepository defines the persistence contract for complaint
// aggregates including their append-only message threads.
type ComplaintRepository interface {
	// Add persists a new complaint aggregate with its opening messages.
	Add(ctx context.Context, aggregate *complaint.Complaint) error

	// Update persists changes to an existing complaint aggregate.
	// New thread messages are inserted; existing messages are never
	// mutated or deleted.
	Update(ctx context.Context, aggregate *complaint.Complaint) error

	// Get retrieves a complaint aggregate with its full thread in order.
	Get(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error)

	// GetForUpdate retrieves a complaint aggregate and locks its row for the
	// duration of the surrounding transaction so concurrent thread appends
	// and status changes serialize instead of racing.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error)
}
