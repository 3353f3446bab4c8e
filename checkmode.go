// Widened key-check hash.
//
// keyCheck can be widened from 32 to 64 bits for a lower false-pure
// probability, at the cost of table bytes and compatibility with the
// standard 32-bit format. CheckModeNarrow32 is the default;
// CheckModeWide64 is an opt-in alternative for callers who keep both
// sides of a reconciliation under their own control and want the
// ~2^-64 false-pure rate instead of ~2^-32.
package iblt

import "golang.org/x/crypto/blake2b"

// CheckMode selects the keyCheck hash used by an IBLT.
type CheckMode int

const (
	// CheckModeNarrow32 is the default: MurmurHash3 with seed
	// SeedCheck, the standard interoperable format.
	CheckModeNarrow32 CheckMode = iota
	// CheckModeWide64 swaps keyCheck for a truncated Blake2b-64
	// digest of the key. Not compatible with the narrow mode.
	CheckModeWide64
)

// checkHash computes the keyCheck contribution of a single key.
type checkHash func(key uint64) uint64

func (m CheckMode) hash() checkHash {
	switch m {
	case CheckModeWide64:
		return blake2bCheck
	default:
		return narrowCheck
	}
}

func narrowCheck(key uint64) uint64 {
	return uint64(murmur3_32(SeedCheck, le8(key)))
}

func blake2bCheck(key uint64) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits; New never fails for size<=64, key=nil
	h.Write(le8(key))
	sum := h.Sum(nil)
	var v uint64
	for _, b := range sum {
		v = v<<8 | uint64(b)
	}
	return v
}
