// Package guard provides ConstructorGuard, embedded in value objects, commands and
// queries so that zero values fail validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor.
//
//	type FolioQuery struct {
//	    folio string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewFolioQuery(folio string) FolioQuery {
//	    return FolioQuery{folio: folio, guard: guard.NewConstructorGuard()}
//	}
//
//	func (q FolioQuery) Validate() error {
//	    return q.guard.Validate(ErrFolioQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil) for zero-value guards.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
