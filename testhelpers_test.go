package iblt

// pseudoRandomValue produces a deterministic, reproducible 4-byte
// value derived from the core hash itself, so overload and listing
// tests don't need an external RNG or fixture file.
//
//	b[i] = H(n+i, prefix_i) & 0xff,  prefix_0 = "", prefix_i = b[0:i]
func pseudoRandomValue(n int) []byte {
	var b [4]byte
	for i := range b {
		h := murmur3_32(uint32(n+i), b[:i])
		b[i] = byte(h)
	}
	return b[:]
}
