// Package guard provides a construction check for commands and value
// objects. Embedding a ConstructorGuard lets a type detect whether it was
// created through its designated constructor or as a zero value, so handlers
// can reject commands that bypassed validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as built through its constructor.
// The zero value fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
// Call it in every constructor that must be enforced.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was constructed properly, otherwise
// the supplied validationError (or ErrDefaultConstructorGuard when nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
