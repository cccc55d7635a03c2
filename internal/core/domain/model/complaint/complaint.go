package complaint

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrComplaintIsNotConstructed is returned when a Complaint instance was not
	// created through the NewComplaint or RestoreComplaint factory methods.
	ErrComplaintIsNotConstructed = errors.New(
		"Complaint must be created via NewComplaint or RestoreComplaint constructor")
)

// Complaint represents a dispute raised by a reporter account, optionally
// against a target account. It is the aggregate root of the dispute tracker:
// it owns the append-only message thread and maintains the SLA timestamps.
//
// Timestamp semantics:
//   - dueAt is fixed at creation: createdAt + SLA(category)
//   - firstResponseAt is set exactly once, by the first admin message,
//     and never overwritten by later messages
//   - resolvedAt is set when the complaint first enters a terminal status;
//     reopening does not clear it (the complaint was answered once — the
//     metric keeps the first resolution)
//   - overdue is a derived view recomputed on every read, never persisted
//     as authoritative state
type Complaint struct {
	id               kernel.UUID
	reporterID       kernel.UUID
	targetID         *kernel.UUID
	category         Category
	subject          string
	status           Status
	createdAt        time.Time
	dueAt            time.Time
	firstResponseAt  *time.Time
	resolvedAt       *time.Time
	messages         []Message
	isConstructed    bool
}

// NewComplaint creates a Complaint with validation.
// The complaint starts Pending with dueAt = now + SLA(category).
func NewComplaint(
	id, reporterID kernel.UUID,
	targetID *kernel.UUID,
	category Category,
	subject string,
	now time.Time,
) (*Complaint, error) {
	c := &Complaint{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setReporter(reporterID),
		c.setTarget(targetID),
		c.setCategory(category),
		c.setSubject(subject),
	); err != nil {
		return nil, err
	}

	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("now")
	}

	c.createdAt = now
	c.dueAt = now.Add(category.SLA())
	return c, nil
}

// RestoreComplaint reconstructs a Complaint from persistence, validating all
// fields. Messages must be supplied in thread order.
func RestoreComplaint(
	id, reporterID kernel.UUID,
	targetID *kernel.UUID,
	category Category,
	subject string,
	status Status,
	createdAt, dueAt time.Time,
	firstResponseAt, resolvedAt *time.Time,
	messages []Message,
) (*Complaint, error) {
	c := &Complaint{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setReporter(reporterID),
		c.setTarget(targetID),
		c.setCategory(category),
		c.setSubject(subject),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}
	if dueAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("dueAt")
	}

	for _, m := range messages {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}

	c.status = status
	c.createdAt = createdAt
	c.dueAt = dueAt
	c.firstResponseAt = firstResponseAt
	c.resolvedAt = resolvedAt
	c.messages = append([]Message(nil), messages...)
	return c, nil
}

// Validate ensures the Complaint instance was properly constructed.
func (c *Complaint) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrComplaintIsNotConstructed
	}
	return nil
}

// IsEqual compares two complaints by their unique identifiers.
func (c *Complaint) IsEqual(other *Complaint) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the complaint's unique identifier.
func (c *Complaint) ID() kernel.UUID {
	return c.id
}

// ReporterID returns the account that filed the complaint.
func (c *Complaint) ReporterID() kernel.UUID {
	return c.reporterID
}

// TargetID returns the account the complaint is raised against.
// Returns nil when the complaint has no specific target.
func (c *Complaint) TargetID() *kernel.UUID {
	return c.targetID
}

// Category returns the complaint category.
func (c *Complaint) Category() Category {
	return c.category
}

// Subject returns the complaint subject line.
func (c *Complaint) Subject() string {
	return c.subject
}

// Status returns the current lifecycle status.
func (c *Complaint) Status() Status {
	return c.status
}

// CreatedAt returns when the complaint was filed.
func (c *Complaint) CreatedAt() time.Time {
	return c.createdAt
}

// DueAt returns the SLA deadline fixed at creation.
func (c *Complaint) DueAt() time.Time {
	return c.dueAt
}

// FirstResponseAt returns when operations staff first responded.
// Returns nil if no admin message has arrived yet.
func (c *Complaint) FirstResponseAt() *time.Time {
	return c.firstResponseAt
}

// ResolvedAt returns when the complaint first entered a terminal status.
// Returns nil if the complaint was never resolved.
func (c *Complaint) ResolvedAt() *time.Time {
	return c.resolvedAt
}

// Messages returns a copy of the thread in order.
func (c *Complaint) Messages() []Message {
	return append([]Message(nil), c.messages...)
}

// AppendMessage adds a message to the thread. The thread is append-only.
//
// If the message is the first admin response, firstResponseAt is set to the
// message's timestamp. The timestamp is set exactly once; later qualifying
// messages never overwrite it.
func (c *Complaint) AppendMessage(m Message) error {
	if err := m.Validate(); err != nil {
		return err
	}

	c.messages = append(c.messages, m)

	if m.SenderKind() == SenderAdmin && c.firstResponseAt == nil {
		sentAt := m.SentAt()
		c.firstResponseAt = &sentAt
	}
	return nil
}

// UpdateStatus moves the complaint to the requested status.
//
// Entering a terminal status (Resolved, Closed) sets resolvedAt to now if it
// is not already set. Reopening — moving from a terminal status back to a
// non-terminal one — is allowed and deliberately does not clear resolvedAt.
func (c *Complaint) UpdateStatus(newStatus Status, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}
	if newStatus == c.status {
		return errs.NewInvalidTransitionError("complaint", c.status.String(), newStatus.String())
	}

	c.status = newStatus

	if newStatus.IsTerminal() && c.resolvedAt == nil {
		c.resolvedAt = &now
	}
	return nil
}

// Overdue reports whether the complaint is past its SLA deadline at the
// given instant: unresolved and now is strictly after dueAt.
//
// This is a pure derived view: it must be recomputed on every read and
// never persisted as authoritative. While resolvedAt stays nil the result
// is monotonic in time.
func (c *Complaint) Overdue(now time.Time) bool {
	return c.resolvedAt == nil && !c.dueAt.IsZero() && now.After(c.dueAt)
}

// FirstResponseMinutes returns the minutes between creation and the first
// admin response, or nil if no response has arrived.
func (c *Complaint) FirstResponseMinutes() *float64 {
	if c.firstResponseAt == nil {
		return nil
	}
	minutes := c.firstResponseAt.Sub(c.createdAt).Minutes()
	return &minutes
}

// ResolutionMinutes returns the minutes between creation and resolution,
// or nil if the complaint was never resolved.
func (c *Complaint) ResolutionMinutes() *float64 {
	if c.resolvedAt == nil {
		return nil
	}
	minutes := c.resolvedAt.Sub(c.createdAt).Minutes()
	return &minutes
}

func (c *Complaint) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Complaint) setReporter(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("reporterId is invalid", err)
	}
	c.reporterID = id
	return nil
}

func (c *Complaint) setTarget(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("targetId is invalid", err)
	}
	target := *id
	c.targetID = &target
	return nil
}

func (c *Complaint) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}

func (c *Complaint) setSubject(subject string) error {
	if subject == "" {
		return errs.NewValueIsRequiredError("subject")
	}
	c.subject = subject
	return nil
}
