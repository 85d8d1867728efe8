package leafstore

import "errors"

// Sentinel errors for the contract violations and configuration errors
// named in spec §7. Config.Validate wraps the configuration errors with
// github.com/pkg/errors for context (errors.Is still matches them);
// Append returns ErrMisalignedAppend bare.
var (
	ErrIndexOutOfRange     = errors.New("leafstore: index out of range")
	ErrRankOutOfRange      = errors.New("leafstore: select rank out of range")
	ErrMisalignedAppend    = errors.New("leafstore: append into excess-enabled leaf is not word-aligned")
	ErrLeafConfigInvalid   = errors.New("leafstore: leaf size configuration invalid")
	ErrChunkAlignmentBroke = errors.New("leafstore: chunk boundary alignment violated")
)
