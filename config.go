package iblt

// Config holds construction-time options for New. The zero Config
// selects the defaults in every field.
type Config struct {
	// K is the number of placement hash functions (stripes). Zero
	// selects NumHashes (4). A non-default K still uses the same
	// placement and check hash, just spread over a different number
	// of stripes, so it never decodes correctly against a table
	// built with a different K.
	K int

	// CheckMode selects the keyCheck hash. Zero value is
	// CheckModeNarrow32, the standard interoperable format.
	CheckMode CheckMode

	// Prefilter enables an in-memory Bloom membership prefilter that
	// Get consults before touching the table. Off by default: it
	// costs memory and insert time in exchange for faster negative
	// lookups, a trade not every caller wants.
	Prefilter bool
}
