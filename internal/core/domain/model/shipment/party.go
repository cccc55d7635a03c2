package shipment

import (
	"errors"

	"marketplace/internal/pkg/errs"
)

// ErrPartyIsNotConstructed is returned when a Party was not created via NewParty.
var ErrPartyIsNotConstructed = errors.New("Party must be created via NewParty constructor")

// Party is a snapshot of a sender or recipient taken when the shipment is
// routed. It deliberately copies the data instead of referencing the account:
// the waybill must not change when the account later edits its profile.
type Party struct {
	name          string
	address       string
	phone         string
	isConstructed bool
}

// NewParty creates a Party snapshot with validation.
// Name and address are required; phone is optional.
func NewParty(name, address, phone string) (Party, error) {
	if name == "" {
		return Party{}, errs.NewValueIsRequiredError("party name")
	}
	if address == "" {
		return Party{}, errs.NewValueIsRequiredError("party address")
	}

	return Party{
		name:          name,
		address:       address,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// Validate ensures the Party was properly constructed.
func (p Party) Validate() error {
	if !p.isConstructed {
		return ErrPartyIsNotConstructed
	}
	return nil
}

// Name returns the party name.
func (p Party) Name() string {
	return p.name
}

// Address returns the party address.
func (p Party) Address() string {
	return p.address
}

// Phone returns the party phone number, possibly empty.
func (p Party) Phone() string {
	return p.phone
}
