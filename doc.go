// Package iblt implements an Invertible Bloom Lookup Table: a
// probabilistic, space-efficient structure that stores a multiset of
// uint64 keys mapped to fixed-width byte values.
//
// Unlike a Bloom filter, an IBLT lets you recover the actual keys and
// values it holds, with high probability, as long as the number of
// entries stays within the table's designed capacity. Two IBLTs built
// over the same shape can also be subtracted to recover the symmetric
// difference of their underlying multisets without either side sending
// its full contents — set reconciliation.
//
// # Layout
//
//	+-------------------+-------------------+-----+-------------------+
//	| stripe 0 (hash 0)  | stripe 1 (hash 1) | ... | stripe k-1        |
//	+-------------------+-------------------+-----+-------------------+
//
// The table is an array of m cells split into k equal, contiguous
// stripes. Hash function i only ever places a key inside stripe i, so
// the k placements of one key always land in k disjoint ranges — a
// property the peeling decoder relies on.
//
// # What it is not
//
// An IBLT is not a cryptographic commitment, is not safe for
// adversarial inputs, and does not persist itself anywhere. It is a
// synchronous, value-typed in-memory structure: callers serialize
// their own access to a shared instance.
package iblt
