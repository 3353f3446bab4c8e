// Optional Bloom membership prefilter.
//
// Sized for a few thousand keys at roughly a 1% false-positive rate,
// it sits in front of Get's table lookup and answers the common
// "definitely not here" case without touching a cell. Hashed with
// SipHash rather than the core MurmurHash3: the prefilter is never
// serialized or compared across processes, so it has no
// bit-compatibility requirement and can use a better-distributed
// 64-bit hash.
package iblt

import "github.com/dchest/siphash"

const (
	prefilterBits = 1 << 16 // 8KiB, ~6.8k keys at 1% FP
	prefilterK    = 7
)

type prefilter struct {
	bits []byte
}

func newPrefilter() *prefilter {
	return &prefilter{bits: make([]byte, prefilterBits/8)}
}

func (p *prefilter) add(key uint64) {
	for _, pos := range p.positions(key) {
		p.bits[pos/8] |= 1 << (pos % 8)
	}
}

// maybeContains returns false only when key is definitely absent.
func (p *prefilter) maybeContains(key uint64) bool {
	for _, pos := range p.positions(key) {
		if p.bits[pos/8]&(1<<(pos%8)) == 0 {
			return false
		}
	}
	return true
}

func (p *prefilter) clone() *prefilter {
	if p == nil {
		return nil
	}
	bits := make([]byte, len(p.bits))
	copy(bits, p.bits)
	return &prefilter{bits: bits}
}

// positions derives prefilterK bit positions from key by double
// hashing a single SipHash-2-4 digest, split into two halves.
func (p *prefilter) positions(key uint64) [prefilterK]uint {
	h := siphash.Hash(0, 0, le8(key))
	a := uint(uint32(h))
	b := uint(h >> 32)
	if b == 0 {
		b = 1
	}
	nbits := uint(len(p.bits) * 8)

	var pos [prefilterK]uint
	for i := range pos {
		pos[i] = (a + uint(i)*b) % nbits
	}
	return pos
}
