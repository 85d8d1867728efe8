package bptree

import "errors"

// Sentinel errors for the node-operation contract violations spec §4.3
// leaves to the implementer's choice ("no-op vs error, but pick one").
// This package always returns an error rather than silently no-opping,
// matching dynbitvector's public-API convention.
var (
	ErrInvalidChildIndex    = errors.New("bptree: child index must be >= 1")
	ErrChildIndexOutOfRange = errors.New("bptree: child index beyond node's fan-out")
	ErrParentOfRoot         = errors.New("bptree: root has no parent")
	ErrDeleteRoot           = errors.New("bptree: deleting the root is undefined")
	ErrInvalidNode          = errors.New("bptree: node position does not open a subtree")
)
