package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetOverdueComplaintsQueryIsNotConstructed = errors.New(
		"GetOverdueComplaintsQuery must be created via NewGetOverdueComplaintsQuery constructor",
	)
)

// GetOverdueComplaintsQuery retrieves all complaints that have blown their
// SLA deadline: unresolved and past due at the given instant. The overdue
// condition is evaluated in the database, never read from a stored flag.
//
// Example:
//
//	query, err := NewGetOverdueComplaintsQuery(time.Now())
//	if err != nil {
//	    return err
//	}
//	overdue, err := handler.Handle(ctx, query)
type GetOverdueComplaintsQuery struct {
	asOf  time.Time
	guard guard.ConstructorGuard
}

// NewGetOverdueComplaintsQuery creates a query for complaints overdue at the
// given instant.
func NewGetOverdueComplaintsQuery(asOf time.Time) (GetOverdueComplaintsQuery, error) {
	if asOf.IsZero() {
		return GetOverdueComplaintsQuery{}, errs.NewValueIsRequiredError("asOf")
	}

	return GetOverdueComplaintsQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// AsOf returns the instant the overdue condition is evaluated at.
func (q GetOverdueComplaintsQuery) AsOf() time.Time {
	return q.asOf
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueComplaintsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueComplaintsQueryIsNotConstructed)
}

// GetOverdueComplaintsQueryResponse is one overdue complaint in the listing.
type GetOverdueComplaintsQueryResponse struct {
	ID         kernel.UUID
	ReporterID kernel.UUID
	Category   string
	Subject    string
	Status     string
	CreatedAt  time.Time
	DueAt      time.Time
}
