// Package id provides a 128-bit, lexicographically sortable identifier.
//
// # Format
//
// The ID is 16 bytes big-endian: [48-bit ms_timestamp][24-bit counter_hi]
// [24-bit counter_lo][32-bit entropy]. Byte-wise comparison therefore
// preserves chronological order, and IDs generated within the same
// millisecond remain strictly increasing through the two counter tiers.
// The canonical textual form is 25 lowercase base-36 digits, zero-padded,
// decodable case-insensitively; it sorts the same way the bytes do.
//
// # Monotonicity
//
// The Generator ensures per-process monotonicity:
//   - Within a millisecond (or a backward clock jump inside the rollback
//     allowance) it increments counter_lo, cascading into counter_hi and, if
//     both tiers are exhausted, borrowing one millisecond from the future.
//   - If the clock regresses beyond the allowance, Generate resets and
//     restarts from the regressed time, while GenerateOrAbort reports
//     ErrClockRollback and leaves state untouched.
//
// counter_hi is refreshed from the entropy source at most once per second of
// generator-perceived time; entropy is freshly drawn for every ID.
//
// Usage
//
//	g := id.NewGenerator()
//	newID := g.Generate()
//	b := newID.Bytes()   // 16-byte representation
//	s := newID.String()  // 25-digit base-36 string
//
// Or via the shared process-wide generator:
//
//	s := id.NewString()
package id
