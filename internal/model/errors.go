package model

import "errors"

// Sentinel errors for model construction. Use errors.Is() in calling code.
var (
	// ErrDuplicateName indicates an entity with the same name already
	// exists in the same table.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrUnknownElement indicates a reference (compartment of a species,
	// mapping target, event assignment target) to a name the model does
	// not contain.
	ErrUnknownElement = errors.New("unknown element")

	// ErrUnknownReference indicates an expression whose bracketed
	// reference does not resolve against the model.
	ErrUnknownReference = errors.New("unresolvable expression reference")

	// ErrNotFound indicates a set-operation on an entity that was never
	// added.
	ErrNotFound = errors.New("entity not found")
)
