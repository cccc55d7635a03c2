package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"
)

// ShopRepository defines the persistence contract for shop aggregates.
type ShopRepository interface {
	// Add persists a new shop aggregate to storage.
	Add(ctx context.Context, aggregate *shop.Shop) error

	// Update persists changes to an existing shop aggregate.
	Update(ctx context.Context, aggregate *shop.Shop) error

	// Get retrieves a shop aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error)

	// GetForUpdate retrieves a shop aggregate and locks its row for the
	// duration of the surrounding transaction so concurrent verification
	// decisions on the same shop serialize instead of racing.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*shop.Shop, error)
}
