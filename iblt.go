// Core IBLT type: construction, mutation, algebra, and diagnostics.
package iblt

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// IBLT is an Invertible Bloom Lookup Table: a fixed-shape, value-
// typed, synchronous structure. It has no internal concurrency
// control — callers must externally serialize a mutating call
// against any other access to the same instance.
type IBLT struct {
	table     *table
	valueSize int
	check     CheckMode
	pre       *prefilter
}

// New constructs an IBLT sized for expectedEntries entries of
// valueSize bytes each. expectedEntries == 0 yields the minimum table
// of K cells (NumHashes unless cfg.K overrides it). valueSize == 0 is
// allowed (keys with no payload).
func New(expectedEntries, valueSize int, cfg Config) *IBLT {
	if expectedEntries < 0 {
		expectedEntries = 0
	}
	if valueSize < 0 {
		valueSize = 0
	}
	check := cfg.CheckMode.hash()
	k := cfg.K
	if k <= 0 {
		k = NumHashes
	}

	t := &IBLT{
		table:     newTable(expectedEntries, valueSize, k, check),
		valueSize: valueSize,
		check:     cfg.CheckMode,
	}
	if cfg.Prefilter {
		t.pre = newPrefilter()
	}
	return t
}

// ValueSize returns the fixed value width this IBLT was constructed
// with.
func (t *IBLT) ValueSize() int { return t.valueSize }

// M returns the total number of cells in the underlying table.
func (t *IBLT) M() int { return t.table.m() }

// K returns the number of placement hash functions (stripes) this
// IBLT was constructed with.
func (t *IBLT) K() int { return t.table.k }

// Insert adds (key, value) to the multiset.
func (t *IBLT) Insert(key uint64, value []byte) error {
	if len(value) != t.valueSize {
		return ErrValueSizeMismatch
	}
	t.table.apply(1, key, value)
	if t.pre != nil {
		t.pre.add(key)
	}
	return nil
}

// Erase removes one occurrence of (key, value) from the multiset.
// Erasing a pair that was never inserted is legal — it's exactly what
// lets Subtract produce negative entries — and simply drives the
// affected cells' counts negative.
func (t *IBLT) Erase(key uint64, value []byte) error {
	if len(value) != t.valueSize {
		return ErrValueSizeMismatch
	}
	t.table.apply(-1, key, value)
	return nil
}

// Clone returns an independent deep copy of t.
func (t *IBLT) Clone() *IBLT {
	return &IBLT{
		table:     t.table.clone(),
		valueSize: t.valueSize,
		check:     t.check,
		pre:       t.pre.clone(),
	}
}

// Subtract returns a new IBLT encoding the signed multiset t − other.
// Peeling the result recovers the elements only in t as positives and
// the elements only in other as negatives (see ListEntries).
func (t *IBLT) Subtract(other *IBLT) (*IBLT, error) {
	if !t.table.sameShape(other.table) || t.check != other.check {
		return nil, ErrShapeMismatch
	}

	outTable := &table{
		cells:        make([]cell, t.table.m()),
		k:            t.table.k,
		cellsPerHash: t.table.cellsPerHash,
		valueSize:    t.valueSize,
		check:        t.table.check,
	}

	for i := range outTable.cells {
		a := &t.table.cells[i]
		b := &other.table.cells[i]
		c := cell{
			count:    a.count - b.count,
			keySum:   a.keySum ^ b.keySum,
			keyCheck: a.keyCheck ^ b.keyCheck,
		}
		c.valueSum = xorValueSums(a.valueSum, b.valueSum, t.valueSize)
		if c.empty() {
			c.valueSum = nil
		}
		outTable.cells[i] = c
	}

	return &IBLT{
		table:     outTable,
		valueSize: t.valueSize,
		check:     t.check,
	}, nil
}

// xorValueSums XORs two (possibly absent) valueSum buffers byte-wise,
// treating an absent side as all-zero of length size.
func xorValueSums(a, b []byte, size int) []byte {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]byte, size)
	for i := 0; i < len(a) && i < size; i++ {
		out[i] ^= a[i]
	}
	for i := 0; i < len(b) && i < size; i++ {
		out[i] ^= b[i]
	}
	return out
}

// DumpTable returns a human-readable listing of cell index, count,
// keySum, and whether keyCheck verifies against keySum. Not a stable
// format — for diagnostics only.
func (t *IBLT) DumpTable() string {
	var b strings.Builder
	b.WriteString("index count keySum checkOK\n")
	check := t.check.hash()
	for i, c := range t.table.cells {
		fmt.Fprintf(&b, "%d %d %d %v\n", i, c.count, c.keySum, c.keyCheck == check(c.keySum))
	}
	return b.String()
}

// dumpRow is one row of DumpJSON's output.
type dumpRow struct {
	Index   int    `json:"index"`
	Count   int32  `json:"count"`
	KeySum  uint64 `json:"keySum"`
	CheckOK bool   `json:"checkOK"`
}

// DumpJSON returns the same diagnostic rows as DumpTable, encoded as
// JSON instead of space-separated text. Like DumpTable, this is not a stable
// wire format and is not a persistence mechanism — it returns bytes
// for the caller to log or assert against, nothing is written to
// disk.
func (t *IBLT) DumpJSON() ([]byte, error) {
	check := t.check.hash()
	rows := make([]dumpRow, len(t.table.cells))
	for i, c := range t.table.cells {
		rows[i] = dumpRow{
			Index:   i,
			Count:   c.count,
			KeySum:  c.keySum,
			CheckOK: c.keyCheck == check(c.keySum),
		}
	}
	return json.Marshal(rows)
}
