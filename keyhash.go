// Convenience key derivation for non-numeric identifiers.
//
// The core table is keyed on uint64; callers whose natural
// identifiers are strings or arbitrary byte strings (URLs, content
// digests, filenames) need a way to fold those down to a uint64
// before calling Insert/Erase/Get. Nothing here feeds into placement
// or keyCheck, it only produces the uint64 that those then hash
// internally.
package iblt

import "github.com/zeebo/xxh3"

// KeyFromBytes derives a uint64 key from an arbitrary byte string.
// Collisions are possible (it's a 64-bit hash of unbounded input) and
// are indistinguishable from two callers legitimately choosing the
// same key — exactly as if they'd picked the uint64 by hand.
func KeyFromBytes(b []byte) uint64 {
	return xxh3.Hash(b)
}

// KeyFromString is KeyFromBytes for the common case of a string
// identifier, avoiding a []byte conversion.
func KeyFromString(s string) uint64 {
	return xxh3.HashString(s)
}
