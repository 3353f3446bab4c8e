package iblt

// cell is one bucket ("hash-table entry") in the table.
//
// count is signed: erasing a (key, value) pair that was never
// inserted is legal (it's how subtract produces negative entries), and
// an unsigned counter would underflow and corrupt the decoder the
// first time that happened.
type cell struct {
	count    int32
	keySum   uint64
	keyCheck uint64 // narrow mode uses only the low 32 bits
	valueSum []byte
}

// empty reports whether c represents no entries at all. valueSum must
// be nil or all-zero whenever this holds — update always restores
// that canonical form, since get relies on it to detect absence.
func (c *cell) empty() bool {
	return c.count == 0 && c.keySum == 0 && c.keyCheck == 0
}

// pure reports whether c is believed to hold exactly one (key, value)
// pair, verified against check, the keyed check hash in effect for
// the table (narrow 32-bit MurmurHash3 or widened 64-bit Blake2b).
func (c *cell) pure(check checkHash) bool {
	if c.count != 1 && c.count != -1 {
		return false
	}
	return c.keyCheck == check(c.keySum)
}

// update is the cell group operation: apply delta insertions (delta=1)
// or erasures (delta=-1) of (key, value). Applying +1 then -1 with the
// same (key, value) must leave the cell bit-identical — that's what
// makes insert/erase form a group and subtract work cell-by-cell.
func (c *cell) update(delta int32, key uint64, value []byte, valueSize int, check checkHash) {
	c.count += delta
	c.keySum ^= key
	c.keyCheck ^= check(key)

	if len(c.valueSum) == 0 && valueSize > 0 {
		c.valueSum = make([]byte, valueSize)
	}
	for i := 0; i < len(value) && i < len(c.valueSum); i++ {
		c.valueSum[i] ^= value[i]
	}

	if c.empty() {
		c.valueSum = nil
	}
}

// clone returns a deep copy of c; valueSum is a distinct backing array.
func (c cell) clone() cell {
	if c.valueSum == nil {
		return c
	}
	v := make([]byte, len(c.valueSum))
	copy(v, c.valueSum)
	c.valueSum = v
	return c
}
