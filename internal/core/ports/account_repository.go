// Package ports defines repository and unit-of-work interfaces for the
// marketplace operations core. These interfaces establish contracts between
// the domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account aggregate.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetForUpdate retrieves an account aggregate and locks its row for the
	// duration of the surrounding transaction. Used by the read-check-write
	// sequence of every state transition so concurrent transitions on the
	// same account serialize instead of racing.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*account.Account, error)
}
