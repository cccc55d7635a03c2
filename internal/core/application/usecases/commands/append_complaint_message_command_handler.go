package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// AppendComplaintMessageResponse is the projection of an appended message.
// FirstResponseAt reflects the complaint after the append, so the caller can
// observe whether this message was the one that started the response clock.
type AppendComplaintMessageResponse struct {
	ComplaintID     string
	MessageID       string
	SenderKind      complaint.SenderKind
	SentAt          time.Time
	FirstResponseAt *time.Time
}

// AppendComplaintMessageCommandHandler appends messages to complaint threads.
//
// Only the reporter, the target, and admins may write into a thread. The
// complaint row is locked for the append so concurrent writers serialize and
// the first-response timestamp is decided exactly once.
type AppendComplaintMessageCommandHandler struct {
	uowFactory ComplaintUoWFactory
	clock      func() time.Time
}

// NewAppendComplaintMessageCommandHandler creates a handler for thread appends.
func NewAppendComplaintMessageCommandHandler(
	uowFactory ComplaintUoWFactory, clock func() time.Time,
) AppendComplaintMessageCommandHandler {
	return AppendComplaintMessageCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle appends the message to the complaint's thread.
func (h AppendComplaintMessageCommandHandler) Handle(
	ctx context.Context, command AppendComplaintMessageCommand,
) (AppendComplaintMessageResponse, error) {
	if err := command.Validate(); err != nil {
		return AppendComplaintMessageResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AppendComplaintMessageResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	complaintRepo := uow.ComplaintRepository()

	c, err := complaintRepo.GetForUpdate(ctx, command.ComplaintID())
	if err != nil {
		return AppendComplaintMessageResponse{}, err
	}

	if !canWriteToThread(command.Caller().AccountID(), command.Caller().IsAdmin(), c) {
		return AppendComplaintMessageResponse{}, errs.NewForbiddenError(
			"only the reporter, the target, or an admin may write to this thread")
	}

	m, err := complaint.NewMessage(
		kernel.NewUUID(),
		command.Caller().AccountID(),
		senderKindForRole(command.Caller().Role()),
		command.Content(),
		command.Attachments(),
		h.clock(),
	)
	if err != nil {
		return AppendComplaintMessageResponse{}, err
	}

	if err = c.AppendMessage(m); err != nil {
		return AppendComplaintMessageResponse{}, err
	}

	if err = complaintRepo.Update(ctx, c); err != nil {
		return AppendComplaintMessageResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AppendComplaintMessageResponse{}, err
	}

	return AppendComplaintMessageResponse{
		ComplaintID:     c.ID().String(),
		MessageID:       m.ID().String(),
		SenderKind:      m.SenderKind(),
		SentAt:          m.SentAt(),
		FirstResponseAt: c.FirstResponseAt(),
	}, nil
}

func canWriteToThread(callerID kernel.UUID, isAdmin bool, c *complaint.Complaint) bool {
	if isAdmin {
		return true
	}
	if c.ReporterID().IsEqual(callerID) {
		return true
	}
	target := c.TargetID()
	return target != nil && target.IsEqual(callerID)
}

// senderKindForRole maps the caller's role onto the thread's sender kind.
// Admins are the only source of SenderAdmin messages; sellers write as the
// reported party; everyone else writes as the customer side.
func senderKindForRole(role account.Role) complaint.SenderKind {
	switch role {
	case account.RoleAdmin:
		return complaint.SenderAdmin
	case account.RoleSeller:
		return complaint.SenderSeller
	default:
		return complaint.SenderCustomer
	}
}
