// Package flags implements typed bitmask flag sets over any fixed-width
// integer storage type.
//
// A Table is the ordered, immutable list of declared flags for one
// flags type: (name, bit pattern) pairs, where an empty name marks an
// anonymous entry that widens the set of valid bits without being
// reported by name. A Value combines a raw storage value with its
// table and supports the full set algebra: union, intersection,
// difference, symmetric difference and complement, plus membership
// queries, iteration and a canonical text form.
//
// # Unknown bits
//
// A Value may carry bits outside every declared entry. The three
// conversion constructors make the policy explicit:
//   - FromBits rejects unknown bits
//   - FromBitsTruncate masks them away (entry-by-entry, so multi-bit
//     flags are only recognized when all of their bits are present)
//   - FromBitsRetain keeps them verbatim
//
// Binary set operations propagate unknown bits exactly as plain
// bitwise arithmetic would; Complement truncates them.
//
// # Text form
//
// Values format as names joined by " | ", with any bits not covered by
// a named entry appended as a lowercase hex number:
//
//	READ | WRITE | 0xc0
//
// Parse accepts the same grammar: identifiers are case-sensitive,
// whitespace around | is ignored, and 0x tokens are preserved verbatim
// (unknown hex bits are not rejected). A value with nothing to print
// formats as 0x0, which parses back to the empty value.
package flags
