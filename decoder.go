// Decoder: point lookup, full enumeration, and the peeling loop both
// share.
//
// Peeling is the one genuinely subtle part of an IBLT: a cell is safe
// to "undo" (subtract its one element back out) only once it is pure,
// and undoing it can make other cells pure in turn. Get stops as soon
// as it has an answer; ListEntries keeps going until nothing more can
// be peeled.
package iblt

// Entry is a decoded (key, value) pair, as returned by ListEntries.
type Entry struct {
	Key   uint64
	Value []byte
}

// Get looks up key and reports one of three outcomes: Found with its
// value, NotPresent, or Undecidable if the table is too loaded to
// tell. It never mutates the receiver — peeling, when needed, runs
// against a private clone.
func (t *IBLT) Get(key uint64) (Result, []byte) {
	if t.pre != nil && !t.pre.maybeContains(key) {
		return NotPresent, nil
	}
	return getFromTable(t.table, key)
}

// getFromTable checks key's own placements first (cheap, and often
// conclusive on its own); if all k are inconclusive, it peels a clone
// one full scan at a time and recurses on the result. The recursion
// always shrinks the number of non-empty cells or terminates, so it
// cannot loop forever.
func getFromTable(tb *table, key uint64) (Result, []byte) {
	for _, i := range tb.placements(key) {
		c := &tb.cells[i]
		switch {
		case c.empty():
			return NotPresent, nil
		case c.pure(tb.check):
			if c.keySum == key {
				return Found, cloneBytes(c.valueSum)
			}
			return NotPresent, nil
		}
	}

	peeled := tb.clone()
	stripped := 0
	for i := range peeled.cells {
		c := &peeled.cells[i]
		if !c.pure(peeled.check) {
			continue
		}
		if c.keySum == key {
			return Found, cloneBytes(c.valueSum)
		}
		// Pass a copy: c is one of the cells apply updates, and its own
		// valueSum is zeroed there before the later stripes are reached.
		peeled.apply(-c.count, c.keySum, cloneBytes(c.valueSum))
		stripped++
	}
	if stripped == 0 {
		return Undecidable, nil
	}
	return getFromTable(peeled, key)
}

// ListEntries peels a clone of t to exhaustion and returns the
// decoded entries split by sign: positive holds cells that settled at
// count == +1 (net insertions), negative holds cells that settled at
// count == -1 (net erasures with no matching insert — the case that
// lets Subtract's result carry "only in B" elements). ok is true iff
// every cell peeled away to empty; when false, positive and negative
// still hold every pair that was decoded before the peel stalled, and
// those are guaranteed correct.
func (t *IBLT) ListEntries() (positive, negative []Entry, ok bool) {
	peeled := t.table.clone()

	for {
		stripped := 0
		for i := range peeled.cells {
			c := &peeled.cells[i]
			if !c.pure(peeled.check) {
				continue
			}
			entry := Entry{Key: c.keySum, Value: cloneBytes(c.valueSum)}
			if c.count == 1 {
				positive = append(positive, entry)
			} else {
				negative = append(negative, entry)
			}
			peeled.apply(-c.count, c.keySum, entry.Value)
			stripped++
		}
		if stripped == 0 {
			break
		}
	}

	ok = true
	for i := range peeled.cells {
		if !peeled.cells[i].empty() {
			ok = false
			break
		}
	}
	return positive, negative, ok
}

// cloneBytes returns an independent copy of b, or nil if b is empty.
// Every value handed back across the package boundary goes through
// this so callers mutating a returned slice can never corrupt the
// table a peel worked from.
func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
