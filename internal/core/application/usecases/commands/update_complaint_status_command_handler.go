package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/pkg/errs"
)

// UpdateComplaintStatusResponse is the projection of the complaint after the
// status change. Overdue is computed against the handler's clock at the time
// of the change.
type UpdateComplaintStatusResponse struct {
	ComplaintID string
	Status      complaint.Status
	ResolvedAt  *time.Time
	Overdue     bool
}

// UpdateComplaintStatusCommandHandler moves complaints through their
// lifecycle. Only admins operate the lifecycle; reporters influence it by
// writing into the thread, not by flipping statuses.
//
// Moving into a terminal status stamps resolvedAt once; reopening a resolved
// complaint keeps the original resolution timestamp.
type UpdateComplaintStatusCommandHandler struct {
	uowFactory ComplaintUoWFactory
	clock      func() time.Time
}

// NewUpdateComplaintStatusCommandHandler creates a handler for complaint
// lifecycle changes.
func NewUpdateComplaintStatusCommandHandler(
	uowFactory ComplaintUoWFactory, clock func() time.Time,
) UpdateComplaintStatusCommandHandler {
	return UpdateComplaintStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle applies the status change under a row lock so concurrent changes on
// the same complaint serialize.
func (h UpdateComplaintStatusCommandHandler) Handle(
	ctx context.Context, command UpdateComplaintStatusCommand,
) (UpdateComplaintStatusResponse, error) {
	if err := command.Validate(); err != nil {
		return UpdateComplaintStatusResponse{}, err
	}

	if !command.Caller().IsAdmin() {
		return UpdateComplaintStatusResponse{}, errs.NewForbiddenError(
			"complaint lifecycle changes require the admin role")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateComplaintStatusResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	complaintRepo := uow.ComplaintRepository()

	c, err := complaintRepo.GetForUpdate(ctx, command.ComplaintID())
	if err != nil {
		return UpdateComplaintStatusResponse{}, err
	}

	now := h.clock()
	if err = c.UpdateStatus(command.NewStatus(), now); err != nil {
		return UpdateComplaintStatusResponse{}, err
	}

	if err = complaintRepo.Update(ctx, c); err != nil {
		return UpdateComplaintStatusResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateComplaintStatusResponse{}, err
	}

	return UpdateComplaintStatusResponse{
		ComplaintID: c.ID().String(),
		Status:      c.Status(),
		ResolvedAt:  c.ResolvedAt(),
		Overdue:     c.Overdue(now),
	}, nil
}
