// Package guard provides the ConstructorGuard pattern used by domain value
// objects and entities to ensure they are only created through their
// designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects created through a constructor from
// zero values. Embed it in a struct and set it with NewConstructorGuard in
// the constructor; the zero value fails validation.
//
// Example:
//
//	type Currency struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCurrency(code string) (Currency, error) {
//	    // validate code...
//	    return Currency{code: code, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Currency) Validate() error {
//	    return c.guard.Validate(ErrCurrencyIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
