package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateComplaintCommandIsNotConstructed = errors.New(
	"CreateComplaintCommand must be created via NewCreateComplaintCommand constructor",
)

// CreateComplaintCommand files a new dispute. The caller becomes the
// reporter; the target account is optional. The thread starts with the
// reporter's opening message. The category literal is parsed at construction,
// so an unknown category fails before anything is loaded or written.
type CreateComplaintCommand struct {
	targetID    *kernel.UUID
	category    complaint.Category
	subject     string
	content     string
	attachments []string
	caller      identity.CallerIdentity
	guard       guard.ConstructorGuard
}

// NewCreateComplaintCommand creates a validated command to file a complaint.
// rawCategory must be one of the known category literals; content is the
// opening message of the thread.
func NewCreateComplaintCommand(
	targetID *kernel.UUID, rawCategory, subject, content string,
	attachments []string, caller identity.CallerIdentity,
) (CreateComplaintCommand, error) {
	category, err := complaint.CategoryFromString(rawCategory)
	if err != nil {
		return CreateComplaintCommand{}, err
	}
	if targetID != nil {
		if err := targetID.Validate(); err != nil {
			return CreateComplaintCommand{}, err
		}
	}
	if content == "" {
		return CreateComplaintCommand{}, errs.NewValueIsRequiredError("content")
	}
	if err := caller.Validate(); err != nil {
		return CreateComplaintCommand{}, err
	}

	return CreateComplaintCommand{
		targetID:    targetID,
		category:    category,
		subject:     subject,
		content:     content,
		attachments: append([]string(nil), attachments...),
		caller:      caller,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// TargetID returns the account the complaint is raised against, or nil.
func (c CreateComplaintCommand) TargetID() *kernel.UUID {
	return c.targetID
}

// Category returns the parsed complaint category.
func (c CreateComplaintCommand) Category() complaint.Category {
	return c.category
}

// Subject returns the complaint subject line.
func (c CreateComplaintCommand) Subject() string {
	return c.subject
}

// Content returns the opening message body.
func (c CreateComplaintCommand) Content() string {
	return c.content
}

// Attachments returns a copy of the opening message's attachment references.
func (c CreateComplaintCommand) Attachments() []string {
	return append([]string(nil), c.attachments...)
}

// Caller returns the identity filing the complaint.
func (c CreateComplaintCommand) Caller() identity.CallerIdentity {
	return c.caller
}

// Validate ensures the command was created through the constructor.
func (c CreateComplaintCommand) Validate() error {
	return c.guard.Validate(ErrCreateComplaintCommandIsNotConstructed)
}
