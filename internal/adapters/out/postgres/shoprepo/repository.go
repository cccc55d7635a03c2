package shoprepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShopRepository implements ShopRepository using GORM.
type GormShopRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShopRepository creates a new GORM shop repository.
func NewGormShopRepository(db *gorm.DB, tracker aggregateTracker) *GormShopRepository {
	return &GormShopRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shop to the database.
func (r *GormShopRepository) Add(ctx context.Context, aggregate *shop.Shop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConcurrencyConflictErrorWithCause("shop", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shop to the database.
func (r *GormShopRepository) Update(ctx context.Context, aggregate *shop.Shop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shop by ID.
func (r *GormShopRepository) Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a shop by ID and locks its row until the surrounding
// transaction ends. Two admins deciding the same shop queue on the lock; the
// second sees the first's decision and fails the transition check.
func (r *GormShopRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	return r.get(ctx, id, true)
}

func (r *GormShopRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*shop.Shop, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ShopDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shop", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
