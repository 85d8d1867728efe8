package dynbitvector

import "errors"

// Sentinel errors for the contract violations named in spec §7.
var (
	ErrIndexOutOfRange = errors.New("dynbitvector: index out of range")
	ErrRankOutOfRange  = errors.New("dynbitvector: select rank out of range")
	ErrEmptyBitVector  = errors.New("dynbitvector: operation not valid on an empty bit vector")
)
