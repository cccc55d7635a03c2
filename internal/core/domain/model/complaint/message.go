package complaint

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrMessageIsNotConstructed is returned when a Message was not created via NewMessage.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")

// SenderKind identifies which side of the dispute wrote a message.
type SenderKind int

const (
	// SenderUnknown represents an invalid or undefined sender kind.
	SenderUnknown SenderKind = iota

	// SenderCustomer marks messages written by the reporting customer.
	SenderCustomer

	// SenderAdmin marks messages written by operations staff.
	// The first admin message sets the complaint's first-response timestamp.
	SenderAdmin

	// SenderSeller marks messages written by the reported seller.
	SenderSeller
)

func getSenderKindStrings() map[SenderKind]string {
	return map[SenderKind]string{
		SenderUnknown:  "UNKNOWN",
		SenderCustomer: "CUSTOMER",
		SenderAdmin:    "ADMIN",
		SenderSeller:   "SELLER",
	}
}

func getValidSenderKindStrings() map[SenderKind]string {
	//nolint:exhaustive // SenderUnknown is intentionally excluded as it's invalid
	return map[SenderKind]string{
		SenderCustomer: "CUSTOMER",
		SenderAdmin:    "ADMIN",
		SenderSeller:   "SELLER",
	}
}

// SenderKindFromString parses a sender kind literal.
func SenderKindFromString(s string) (SenderKind, error) {
	for kind, str := range getValidSenderKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return SenderUnknown, errs.NewValueIsInvalidErrorWithCause("sender kind is invalid",
		fmt.Errorf("%q is not a valid sender kind", s))
}

// Validate checks if the SenderKind value is one of the defined kinds.
func (k SenderKind) Validate() error {
	if _, ok := getValidSenderKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("sender kind is invalid",
			fmt.Errorf("%d is not a valid sender kind", k))
	}
	return nil
}

// String returns the uppercase literal of the sender kind.
func (k SenderKind) String() string {
	if str, ok := getSenderKindStrings()[k]; ok {
		return str
	}
	return "UNKNOWN"
}

// Message is one entry in a complaint's thread. Messages are append-only:
// once added to a complaint they are never mutated or deleted.
type Message struct {
	id            kernel.UUID
	senderID      kernel.UUID
	senderKind    SenderKind
	content       string
	attachments   []string
	sentAt        time.Time
	isConstructed bool
}

// NewMessage creates a Message with validation.
func NewMessage(
	id, senderID kernel.UUID,
	senderKind SenderKind,
	content string,
	attachments []string,
	sentAt time.Time,
) (Message, error) {
	if err := id.Validate(); err != nil {
		return Message{}, err
	}
	if err := senderID.Validate(); err != nil {
		return Message{}, errs.NewValueIsInvalidErrorWithCause("senderId is invalid", err)
	}
	if err := senderKind.Validate(); err != nil {
		return Message{}, err
	}
	if content == "" {
		return Message{}, errs.NewValueIsRequiredError("content")
	}
	if sentAt.IsZero() {
		return Message{}, errs.NewValueIsRequiredError("sentAt")
	}

	return Message{
		id:            id,
		senderID:      senderID,
		senderKind:    senderKind,
		content:       content,
		attachments:   append([]string(nil), attachments...),
		sentAt:        sentAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Message was properly constructed.
func (m Message) Validate() error {
	if !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

// ID returns the message identifier.
func (m Message) ID() kernel.UUID {
	return m.id
}

// SenderID returns the account that wrote the message.
func (m Message) SenderID() kernel.UUID {
	return m.senderID
}

// SenderKind returns which side of the dispute wrote the message.
func (m Message) SenderKind() SenderKind {
	return m.senderKind
}

// Content returns the message body.
func (m Message) Content() string {
	return m.content
}

// Attachments returns a copy of the attachment references.
func (m Message) Attachments() []string {
	return append([]string(nil), m.attachments...)
}

// SentAt returns when the message was written.
func (m Message) SentAt() time.Time {
	return m.sentAt
}
