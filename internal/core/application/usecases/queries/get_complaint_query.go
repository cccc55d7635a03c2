package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetComplaintQueryIsNotConstructed = errors.New(
		"GetComplaintQuery must be created via NewGetComplaintQuery constructor",
	)
)

// GetComplaintQuery retrieves one complaint with its full message thread and
// the derived SLA view: overdue flag and response/resolution timings.
//
// Example:
//
//	query, err := NewGetComplaintQuery(complaintID)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
type GetComplaintQuery struct {
	complaintID kernel.UUID
	guard       guard.ConstructorGuard
}

// NewGetComplaintQuery creates a query for a single complaint.
func NewGetComplaintQuery(complaintID kernel.UUID) (GetComplaintQuery, error) {
	if err := complaintID.Validate(); err != nil {
		return GetComplaintQuery{}, err
	}

	return GetComplaintQuery{
		complaintID: complaintID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// ComplaintID returns the identifier of the complaint to fetch.
func (q GetComplaintQuery) ComplaintID() kernel.UUID {
	return q.complaintID
}

// Validate ensures the query was created through the constructor.
func (q GetComplaintQuery) Validate() error {
	return q.guard.Validate(ErrGetComplaintQueryIsNotConstructed)
}

// GetComplaintQueryResponse is the read model of a complaint.
//
// Overdue, FirstResponseMinutes and ResolutionMinutes are derived at read
// time from the stored timestamps; they are never persisted.
type GetComplaintQueryResponse struct {
	ID                   kernel.UUID
	ReporterID           kernel.UUID
	TargetID             *kernel.UUID
	Category             string
	Subject              string
	Status               string
	CreatedAt            time.Time
	DueAt                time.Time
	FirstResponseAt      *time.Time
	ResolvedAt           *time.Time
	Overdue              bool
	FirstResponseMinutes *float64
	ResolutionMinutes    *float64
	Messages             []ComplaintMessageResponse
}

// ComplaintMessageResponse is one entry of the complaint's thread in the
// read model.
type ComplaintMessageResponse struct {
	ID          kernel.UUID
	SenderID    kernel.UUID
	SenderKind  string
	Content     string
	Attachments []string
	SentAt      time.Time
}
