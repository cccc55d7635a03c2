package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateComplaintStatusCommandIsNotConstructed = errors.New(
	"UpdateComplaintStatusCommand must be created via NewUpdateComplaintStatusCommand constructor",
)

// UpdateComplaintStatusCommand moves a complaint through its lifecycle.
// The status literal is parsed at construction, so an unrecognized literal is
// rejected as invalid input before any complaint is loaded.
type UpdateComplaintStatusCommand struct {
	complaintID kernel.UUID
	newStatus   complaint.Status
	caller      identity.CallerIdentity
	guard       guard.ConstructorGuard
}

// NewUpdateComplaintStatusCommand creates a validated command to change a
// complaint's status. rawStatus must be one of the known status literals.
func NewUpdateComplaintStatusCommand(
	complaintID kernel.UUID, rawStatus string, caller identity.CallerIdentity,
) (UpdateComplaintStatusCommand, error) {
	if err := complaintID.Validate(); err != nil {
		return UpdateComplaintStatusCommand{}, err
	}
	newStatus, err := complaint.StatusFromString(rawStatus)
	if err != nil {
		return UpdateComplaintStatusCommand{}, err
	}
	if err := caller.Validate(); err != nil {
		return UpdateComplaintStatusCommand{}, err
	}

	return UpdateComplaintStatusCommand{
		complaintID: complaintID,
		newStatus:   newStatus,
		caller:      caller,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// ComplaintID returns the identifier of the complaint to move.
func (c UpdateComplaintStatusCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}

// NewStatus returns the parsed status to move to.
func (c UpdateComplaintStatusCommand) NewStatus() complaint.Status {
	return c.newStatus
}

// Caller returns the identity performing the change.
func (c UpdateComplaintStatusCommand) Caller() identity.CallerIdentity {
	return c.caller
}

// Validate ensures the command was created through the constructor.
func (c UpdateComplaintStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateComplaintStatusCommandIsNotConstructed)
}
