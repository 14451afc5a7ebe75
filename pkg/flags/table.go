package flags

import "github.com/bitflags/bitflags/pkg/bits"

// Table is the ordered, immutable flag vocabulary for one flags type.
// Declaration order is canonical: it decides iteration order,
// truncation order and alias tie-breaks.
//
// Values created from different tables must not be mixed; binary
// operations use the receiver's table.
type Table[B bits.Bits] struct {
	flags []Flag[B]
	all   B
}

// NewTable builds a table from flag entries in declaration order.
// Aliased, overlapping, zero-bit and anonymous entries are all legal.
func NewTable[B bits.Bits](entries ...Flag[B]) *Table[B] {
	t := &Table[B]{flags: make([]Flag[B], len(entries))}
	copy(t.flags, entries)
	for _, f := range t.flags {
		t.all |= f.bits
	}
	return t
}

// Len returns the number of declared entries.
func (t *Table[B]) Len() int {
	return len(t.flags)
}

// Flags returns a copy of the declared entries in order.
func (t *Table[B]) Flags() []Flag[B] {
	out := make([]Flag[B], len(t.flags))
	copy(out, t.flags)
	return out
}

// Flag returns the entry at index i in declaration order.
func (t *Table[B]) Flag(i int) Flag[B] {
	return t.flags[i]
}

// AllBits returns the union of every declared entry's bits, named and
// anonymous alike.
func (t *Table[B]) AllBits() B {
	return t.all
}

// Empty returns the value with no bits set.
func (t *Table[B]) Empty() Value[B] {
	return Value[B]{table: t}
}

// All returns the value with every declared bit set.
func (t *Table[B]) All() Value[B] {
	return Value[B]{table: t, bits: t.all}
}

// FromBits converts a raw storage value, rejecting bit patterns that
// contain bits outside the declared universe. Bits covered only by
// anonymous entries are accepted.
func (t *Table[B]) FromBits(b B) (Value[B], bool) {
	if t.truncate(b) != b {
		return t.Empty(), false
	}
	return Value[B]{table: t, bits: b}, true
}

// FromBitsTruncate converts a raw storage value, dropping any bits
// that do not correspond to declared flags. Recognition is
// entry-by-entry: a multi-bit flag contributes its bits only when all
// of them are present in b.
func (t *Table[B]) FromBitsTruncate(b B) Value[B] {
	return Value[B]{table: t, bits: t.truncate(b)}
}

// FromBitsRetain converts a raw storage value verbatim, preserving
// bits that correspond to no declared flag. Callers take
// responsibility for unknown bits being meaningful in their domain;
// every operation tolerates them.
func (t *Table[B]) FromBitsRetain(b B) Value[B] {
	return Value[B]{table: t, bits: b}
}

// FromName returns the value of the first entry with the given name.
// Matching is exact and case-sensitive; anonymous entries never match.
func (t *Table[B]) FromName(name string) (Value[B], bool) {
	for _, f := range t.flags {
		if f.IsNamed() && f.name == name {
			return Value[B]{table: t, bits: f.bits}, true
		}
	}
	return t.Empty(), false
}

// FromSlice returns the union of the given values, starting from the
// empty value.
func (t *Table[B]) FromSlice(values []Value[B]) Value[B] {
	v := t.Empty()
	for _, o := range values {
		v.Insert(o)
	}
	return v
}

func (t *Table[B]) truncate(b B) B {
	truncated := bits.Empty[B]()
	for _, f := range t.flags {
		if b&f.bits == f.bits {
			truncated |= f.bits
		}
	}
	return truncated
}
