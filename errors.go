package orthtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("orthtree: invalid configuration")
	// ErrDuplicateValue signals insertion of an already-stored value.
	ErrDuplicateValue = errors.New("orthtree: value already stored")
	// ErrNoSuchValue signals an operation on a value the tree does not hold.
	ErrNoSuchValue = errors.New("orthtree: no such value")
	// ErrOutOfArea signals a box not contained in the tree's area.
	ErrOutOfArea = errors.New("orthtree: box out of tree area")
	// ErrCorrupted is reported by Check for violated structural invariants.
	ErrCorrupted = errors.New("orthtree: corrupted tree structure")
)
