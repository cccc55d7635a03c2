package complaintrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormComplaintRepository implements ComplaintRepository using GORM.
type GormComplaintRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormComplaintRepository creates a new GORM complaint repository.
func NewGormComplaintRepository(db *gorm.DB, tracker aggregateTracker) *GormComplaintRepository {
	return &GormComplaintRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new complaint to the database.
func (r *GormComplaintRepository) Add(ctx context.Context, aggregate *complaint.Complaint) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConcurrencyConflictErrorWithCause("complaint", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing complaint to the database.
// The message thread is append-only, so existing message rows are upserted
// unchanged and new ones inserted.
func (r *GormComplaintRepository) Update(ctx context.Context, aggregate *complaint.Complaint) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to persist newly appended messages
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a complaint by ID with its full message thread.
func (r *GormComplaintRepository) Get(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a complaint by ID and locks its row until the
// surrounding transaction ends. Concurrent appends and status changes on the
// same complaint queue on the lock, so the first-response and resolution
// timestamps are decided exactly once.
func (r *GormComplaintRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error) {
	return r.get(ctx, id, true)
}

func (r *GormComplaintRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*complaint.Complaint, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		// Lock the aggregate row only; message rows are never mutated
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "complaints"}})
	}

	var dto ComplaintDTO
	err := tx.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("sent_at, id")
	}).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("complaint", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
