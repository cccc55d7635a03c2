package shop

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrShopIsNotConstructed is returned when a Shop instance was not created
	// through the NewShop or RestoreShop factory methods.
	ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop or RestoreShop constructor")
)

// Shop represents a seller profile on the marketplace. It is the aggregate
// root of the verification state machine and owns exactly one Account (1:1).
//
// Shop follows these invariants:
//   - Must have a valid unique identifier and owner identifier
//   - Must have a non-empty name
//   - Only a Pending shop may transition to Verified or Rejected
//   - Can only be created through NewShop or RestoreShop
type Shop struct {
	id                 kernel.UUID
	ownerAccountID     kernel.UUID
	name               string
	description        string
	verificationStatus VerificationStatus
	isConstructed      bool
}

// NewShop creates a new Shop with validation.
// The shop starts Unverified and must be submitted for review before
// it can be approved or rejected.
func NewShop(id, ownerAccountID kernel.UUID, name, description string) (*Shop, error) {
	s := &Shop{
		verificationStatus: Unverified,
		isConstructed:      true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwner(ownerAccountID),
		s.setName(name),
	); err != nil {
		return nil, err
	}

	s.description = description
	return s, nil
}

// RestoreShop reconstructs a Shop from persistence, validating all fields
// including the stored verification status.
func RestoreShop(
	id, ownerAccountID kernel.UUID, name, description string, status VerificationStatus,
) (*Shop, error) {
	s := &Shop{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwner(ownerAccountID),
		s.setName(name),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	s.verificationStatus = status
	return s, nil
}

// Validate ensures the Shop instance was properly constructed.
func (s *Shop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShopIsNotConstructed
	}
	return nil
}

// IsEqual compares two shops by their unique identifiers.
func (s *Shop) IsEqual(other *Shop) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shop's unique identifier.
func (s *Shop) ID() kernel.UUID {
	return s.id
}

// OwnerAccountID returns the identifier of the owning account.
func (s *Shop) OwnerAccountID() kernel.UUID {
	return s.ownerAccountID
}

// Name returns the display name of the shop.
func (s *Shop) Name() string {
	return s.name
}

// Description returns the shop description.
func (s *Shop) Description() string {
	return s.description
}

// VerificationStatus returns the current verification state of the shop.
func (s *Shop) VerificationStatus() VerificationStatus {
	return s.verificationStatus
}

// SubmitForVerification moves an Unverified shop into the review queue.
func (s *Shop) SubmitForVerification() error {
	newStatus, err := s.verificationStatus.Submit()
	if err != nil {
		return err
	}

	s.verificationStatus = newStatus
	return nil
}

// Approve marks a Pending shop as Verified.
// Verified is a final state with no further transitions.
func (s *Shop) Approve() error {
	newStatus, err := s.verificationStatus.Approve()
	if err != nil {
		return err
	}

	s.verificationStatus = newStatus
	return nil
}

// Reject marks a Pending shop as Rejected.
//
// The compensating role revert on the owning account is coordinated by the
// application layer within the same transaction: a rejected shop must not
// leave its owner privileged.
func (s *Shop) Reject() error {
	newStatus, err := s.verificationStatus.Reject()
	if err != nil {
		return err
	}

	s.verificationStatus = newStatus
	return nil
}

func (s *Shop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shop) setOwner(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("ownerAccountId is invalid", err)
	}
	s.ownerAccountID = id
	return nil
}

func (s *Shop) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}
