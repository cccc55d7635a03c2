package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAppendComplaintMessageCommandIsNotConstructed = errors.New(
	"AppendComplaintMessageCommand must be created via NewAppendComplaintMessageCommand constructor",
)

// AppendComplaintMessageCommand adds one message to a complaint's thread.
// The sender kind is derived from the caller's role in the handler, never
// taken from the request, so a customer cannot forge an admin response and
// trip the first-response timestamp.
type AppendComplaintMessageCommand struct {
	complaintID kernel.UUID
	content     string
	attachments []string
	caller      identity.CallerIdentity
	guard       guard.ConstructorGuard
}

// NewAppendComplaintMessageCommand creates a validated command to append a
// message to a complaint thread.
func NewAppendComplaintMessageCommand(
	complaintID kernel.UUID, content string, attachments []string, caller identity.CallerIdentity,
) (AppendComplaintMessageCommand, error) {
	if err := complaintID.Validate(); err != nil {
		return AppendComplaintMessageCommand{}, err
	}
	if content == "" {
		return AppendComplaintMessageCommand{}, errs.NewValueIsRequiredError("content")
	}
	if err := caller.Validate(); err != nil {
		return AppendComplaintMessageCommand{}, err
	}

	return AppendComplaintMessageCommand{
		complaintID: complaintID,
		content:     content,
		attachments: append([]string(nil), attachments...),
		caller:      caller,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// ComplaintID returns the identifier of the complaint to append to.
func (c AppendComplaintMessageCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}

// Content returns the message body.
func (c AppendComplaintMessageCommand) Content() string {
	return c.content
}

// Attachments returns a copy of the attachment references.
func (c AppendComplaintMessageCommand) Attachments() []string {
	return append([]string(nil), c.attachments...)
}

// Caller returns the identity writing the message.
func (c AppendComplaintMessageCommand) Caller() identity.CallerIdentity {
	return c.caller
}

// Validate ensures the command was created through the constructor.
func (c AppendComplaintMessageCommand) Validate() error {
	return c.guard.Validate(ErrAppendComplaintMessageCommandIsNotConstructed)
}
