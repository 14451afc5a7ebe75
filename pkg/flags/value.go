package flags

import "github.com/bitflags/bitflags/pkg/bits"

// Value is a set of flags: a raw storage value bound to its table.
// Values are inert, copyable and comparable with ==; two values are
// equal iff they share a table and their raw bits are equal, no matter
// which declared entries explain those bits.
//
// The zero Value is not bound to a table; obtain values from a Table.
type Value[B bits.Bits] struct {
	table *Table[B]
	bits  B
}

// Table returns the table the value is bound to.
func (v Value[B]) Table() *Table[B] {
	return v.table
}

// Bits returns the raw storage value, including any unknown bits.
// This is the canonical raw encoding of the value.
func (v Value[B]) Bits() B {
	return v.bits
}

// IsEmpty reports whether no bits are set. A declared zero-bit flag
// does not count toward non-emptiness.
func (v Value[B]) IsEmpty() bool {
	return v.bits == bits.Empty[B]()
}

// IsAll reports whether every declared bit is set. Unknown bits do not
// prevent a value from being all.
func (v Value[B]) IsAll() bool {
	return v.table.all|v.bits == v.bits
}

// Intersects reports whether v and other have any bit in common.
func (v Value[B]) Intersects(other Value[B]) bool {
	return v.bits&other.bits != bits.Empty[B]()
}

// Contains reports whether every bit of other is set in v. A zero-bit
// value is contained in everything.
func (v Value[B]) Contains(other Value[B]) bool {
	return v.bits&other.bits == other.bits
}

// Insert sets the bits of other in place.
func (v *Value[B]) Insert(other Value[B]) {
	v.bits |= other.bits
}

// Remove clears the bits of other in place.
func (v *Value[B]) Remove(other Value[B]) {
	v.bits &^= other.bits
}

// Toggle flips the bits of other in place.
func (v *Value[B]) Toggle(other Value[B]) {
	v.bits ^= other.bits
}

// Set inserts or removes the bits of other depending on value.
func (v *Value[B]) Set(other Value[B], value bool) {
	if value {
		v.Insert(other)
	} else {
		v.Remove(other)
	}
}

// InsertAll sets the bits of every given value in place, the bulk
// construction path.
func (v *Value[B]) InsertAll(others ...Value[B]) {
	for _, o := range others {
		v.bits |= o.bits
	}
}

// Union returns the bits set in v or other. Unknown bits propagate.
func (v Value[B]) Union(other Value[B]) Value[B] {
	return Value[B]{table: v.table, bits: v.bits | other.bits}
}

// Intersection returns the bits set in both v and other. Unknown bits
// propagate.
func (v Value[B]) Intersection(other Value[B]) Value[B] {
	return Value[B]{table: v.table, bits: v.bits & other.bits}
}

// Difference returns the bits set in v but not in other. Unknown bits
// propagate.
func (v Value[B]) Difference(other Value[B]) Value[B] {
	return Value[B]{table: v.table, bits: v.bits &^ other.bits}
}

// SymmetricDifference returns the bits set in exactly one of v and
// other. Unknown bits propagate.
func (v Value[B]) SymmetricDifference(other Value[B]) Value[B] {
	return Value[B]{table: v.table, bits: v.bits ^ other.bits}
}

// Complement returns the declared flags not set in v. The result is
// truncated: inverting a value never introduces unknown bits, and any
// unknown bits in v are dropped rather than inverted.
func (v Value[B]) Complement() Value[B] {
	return v.table.FromBitsTruncate(^v.bits)
}

// Compare orders values by their unsigned bit pattern. It returns -1,
// 0 or 1.
func (v Value[B]) Compare(other Value[B]) int {
	a, b := bits.ToUint64(v.bits), bits.ToUint64(other.bits)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
