package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/kernel"
)

// CreateComplaintResponse is the projection of a freshly filed complaint.
type CreateComplaintResponse struct {
	ComplaintID string
	Status      complaint.Status
	CreatedAt   time.Time
	DueAt       time.Time
}

// CreateComplaintCommandHandler files new complaints. The SLA deadline is
// fixed here, at filing time, from the category's response window.
type CreateComplaintCommandHandler struct {
	uowFactory ComplaintUoWFactory
	clock      func() time.Time
}

// NewCreateComplaintCommandHandler creates a handler for filing complaints.
// clock supplies the current instant; pass time.Now in production wiring.
func NewCreateComplaintCommandHandler(
	uowFactory ComplaintUoWFactory, clock func() time.Time,
) CreateComplaintCommandHandler {
	return CreateComplaintCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle files the complaint and returns its projection.
func (h CreateComplaintCommandHandler) Handle(
	ctx context.Context, command CreateComplaintCommand,
) (CreateComplaintResponse, error) {
	if err := command.Validate(); err != nil {
		return CreateComplaintResponse{}, err
	}

	now := h.clock()

	c, err := complaint.NewComplaint(
		kernel.NewUUID(),
		command.Caller().AccountID(),
		command.TargetID(),
		command.Category(),
		command.Subject(),
		now,
	)
	if err != nil {
		return CreateComplaintResponse{}, err
	}

	opening, err := complaint.NewMessage(
		kernel.NewUUID(),
		command.Caller().AccountID(),
		senderKindForRole(command.Caller().Role()),
		command.Content(),
		command.Attachments(),
		now,
	)
	if err != nil {
		return CreateComplaintResponse{}, err
	}

	if err = c.AppendMessage(opening); err != nil {
		return CreateComplaintResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateComplaintResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ComplaintRepository().Add(ctx, c); err != nil {
		return CreateComplaintResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateComplaintResponse{}, err
	}

	return CreateComplaintResponse{
		ComplaintID: c.ID().String(),
		Status:      c.Status(),
		CreatedAt:   c.CreatedAt(),
		DueAt:       c.DueAt(),
	}, nil
}
