// Package guard provides a defensive programming pattern that ensures commands,
// queries, and value objects are only created through their designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its constructor
// or as a zero value. Embedding it in commands and queries prevents handlers
// from operating on objects that bypassed validation.
//
// Example:
//
//	type ReviewShopCommand struct {
//	    shopID kernel.UUID
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewReviewShopCommand(shopID kernel.UUID) (ReviewShopCommand, error) {
//	    if err := shopID.Validate(); err != nil {
//	        return ReviewShopCommand{}, err
//	    }
//	    return ReviewShopCommand{shopID: shopID, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its constructor.
// For zero-value objects it returns validationError, or ErrDefaultConstructorGuard
// when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
