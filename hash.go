// Core keyed hash used for cell placement and the pure-cell check.
//
// This is MurmurHash3 x86_32, non-cryptographic and bit-identical
// across platforms. Bit-exactness matters here: a table built by one
// process and subtracted against a table built by another only
// reconciles correctly if both derive the same cell indices and the
// same keyCheck values from the same keys.
package iblt

import "encoding/binary"

// NumHashes is the default number of placement hash functions, i.e. the
// default number of stripes a key is spread across. Config.K can
// override it, but two tables only combine if they were built with
// the same value.
const NumHashes = 4

// SeedCheck is the reserved seed used to compute keyCheck. It does
// not double as a placement seed; seeds 0..NumHashes-1 are reserved for
// that.
const SeedCheck = 11

// le8 encodes a uint64 key as 8 little-endian bytes, the encoding the
// hash and the check hash both operate on.
func le8(k uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], k)
	return b[:]
}

// murmur3_32 is MurmurHash3 x86_32 over data with the given seed.
func murmur3_32(seed uint32, data []byte) uint32 {
	const c1 = 0xcc9e2d51
	const c2 = 0x1b873593

	h1 := seed
	length := len(data)
	roundedEnd := length &^ 3 // round down to multiple of 4

	for i := 0; i < roundedEnd; i += 4 {
		k1 := uint32(data[i]) | uint32(data[i+1])<<8 | uint32(data[i+2])<<16 | uint32(data[i+3])<<24
		k1 *= c1
		k1 = (k1 << 15) | (k1 >> 17)
		k1 *= c2
		h1 ^= k1
		h1 = (h1 << 13) | (h1 >> 19)
		h1 = h1*5 + 0xe6546b64
	}

	var k1 uint32
	switch length & 3 {
	case 3:
		k1 ^= uint32(data[roundedEnd+2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(data[roundedEnd+1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(data[roundedEnd])
		k1 *= c1
		k1 = (k1 << 15) | (k1 >> 17)
		k1 *= c2
		h1 ^= k1
	}

	h1 ^= uint32(length)
	h1 ^= h1 >> 16
	h1 *= 0x85ebca6b
	h1 ^= h1 >> 13
	h1 *= 0xc2b2ae35
	h1 ^= h1 >> 16

	return h1
}
