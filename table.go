package iblt

// table is the fixed-size cell array underlying an IBLT, partitioned
// into k equal, contiguous stripes — one per placement hash function.
// Because hash i only ever indexes into stripe i, the k placements of
// any single key are guaranteed to land in disjoint ranges.
type table struct {
	cells        []cell
	k            int
	cellsPerHash int
	valueSize    int
	check        checkHash
}

// newTable sizes and allocates a table for expectedEntries elements of
// valueSize bytes each, spread across k stripes.
//
// m = expectedEntries * 1.5 gives a low probability of decode failure
// at full load; m is then rounded up to a multiple of k so the
// stripes divide evenly.
func newTable(expectedEntries, valueSize, k int, check checkHash) *table {
	if k <= 0 {
		k = NumHashes
	}
	m := expectedEntries + expectedEntries/2
	for k*(m/k) != m {
		m++
	}
	if m < k {
		m = k
	}
	return &table{
		cells:        make([]cell, m),
		k:            k,
		cellsPerHash: m / k,
		valueSize:    valueSize,
		check:        check,
	}
}

// m returns the total cell count.
func (t *table) m() int { return len(t.cells) }

// placements returns the k cell indices key hashes to, one per
// stripe. Index i is always in [i*cellsPerHash, (i+1)*cellsPerHash).
func (t *table) placements(key uint64) []int {
	idx := make([]int, t.k)
	kv := le8(key)
	for i := 0; i < t.k; i++ {
		h := murmur3_32(uint32(i), kv)
		idx[i] = i*t.cellsPerHash + int(h)%t.cellsPerHash
	}
	return idx
}

// apply applies delta insertions/erasures of (key, value) to every
// cell key maps to.
func (t *table) apply(delta int32, key uint64, value []byte) {
	for _, i := range t.placements(key) {
		c := &t.cells[i]
		c.update(delta, key, value, t.valueSize, t.check)
	}
}

// clone returns a deep copy of the table, independent of t.
func (t *table) clone() *table {
	cells := make([]cell, len(t.cells))
	for i, c := range t.cells {
		cells[i] = c.clone()
	}
	return &table{
		cells:        cells,
		k:            t.k,
		cellsPerHash: t.cellsPerHash,
		valueSize:    t.valueSize,
		check:        t.check,
	}
}

// sameShape reports whether t and other can be combined (subtracted).
func (t *table) sameShape(other *table) bool {
	return t.m() == other.m() && t.valueSize == other.valueSize && t.k == other.k
}
