package leafstore

import "github.com/pkg/errors"

// BlockWidth is W from spec §3: the fixed machine-word width leaves pack
// bits into. uint64 throughout keeps one popcount/shift-cascade path
// instead of parameterizing over word size.
const BlockWidth = 64

// BlocksPerChunk is the number of consecutive words summarized by one
// ExcessChunk when excess support is enabled.
const BlocksPerChunk = 4

// Config carries the leaf-size parameters spec §4.2 requires to be
// validated once at construction (the "configuration error" class in
// §7 kind 4). Units are blocks (words), matching the
// MIN/INITIAL/MAX_LEAF_BLOCKS naming from the C++ reference.
type Config struct {
	MinLeafBlocks     int
	InitialLeafBlocks int
	MaxLeafBlocks     int
	ExcessEnabled     bool
}

// DefaultConfig ships a validated zero-flag default so callers that
// don't care about tuning never have to build one by hand.
func DefaultConfig() Config {
	return Config{
		MinLeafBlocks:     4,
		InitialLeafBlocks: 8,
		MaxLeafBlocks:     16,
		ExcessEnabled:     false,
	}
}

// DefaultBPConfig is the leaf configuration DynamicBPTree wires its
// bitvector with: excess summaries enabled, sized so BlocksPerChunk
// divides every split point per spec §9 "Chunk alignment".
func DefaultBPConfig() Config {
	return Config{
		MinLeafBlocks:     8,
		InitialLeafBlocks: 16,
		MaxLeafBlocks:     32,
		ExcessEnabled:     true,
	}
}

// Validate enforces spec §4.2's "2*MIN <= INITIAL <= 2*MAX" and §9's
// chunk-alignment rule that MIN/INITIAL/MAX must each be multiples of
// BlocksPerChunk when excess is enabled.
func (c Config) Validate() error {
	if c.MinLeafBlocks <= 0 || c.InitialLeafBlocks <= 0 || c.MaxLeafBlocks <= 0 {
		return errors.Wrap(ErrLeafConfigInvalid, "leaf block counts must be positive")
	}
	if 2*c.MinLeafBlocks > c.InitialLeafBlocks || c.InitialLeafBlocks > 2*c.MaxLeafBlocks {
		return errors.Wrapf(ErrLeafConfigInvalid,
			"need 2*min(%d) <= initial(%d) <= 2*max(%d)", c.MinLeafBlocks, c.InitialLeafBlocks, c.MaxLeafBlocks)
	}
	if c.MinLeafBlocks >= c.MaxLeafBlocks {
		return errors.Wrap(ErrLeafConfigInvalid, "min must be strictly less than max")
	}
	if c.ExcessEnabled {
		for _, v := range []int{c.MinLeafBlocks, c.InitialLeafBlocks, c.MaxLeafBlocks} {
			if v%BlocksPerChunk != 0 {
				return errors.Wrapf(ErrChunkAlignmentBroke,
					"block count %d is not a multiple of BlocksPerChunk=%d", v, BlocksPerChunk)
			}
		}
	}
	return nil
}

// MinLeafBits / MaxLeafBits express the config in bit units, matching
// spec §3's invariant phrasing ("len >= MIN_LEAF_BITS unless root").
func (c Config) MinLeafBits() int { return c.MinLeafBlocks * BlockWidth }
func (c Config) MaxLeafBits() int { return c.MaxLeafBlocks * BlockWidth }
func (c Config) InitialLeafBits() int { return c.InitialLeafBlocks * BlockWidth }
