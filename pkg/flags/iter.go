package flags

import "github.com/bitflags/bitflags/pkg/bits"

// MatchIter walks the table in declaration order and yields every
// entry, anonymous ones included, whose bits are all present in the
// source value.
//
// Entries are matched against the original source, not against what
// remains, so overlapping flags are handled properly. With
//
//	A = 0b001
//	B = 0b101
//
// the source 0b101 yields both A and B: clearing A's bit from a shared
// accumulator before testing B would hide B. Matched bits are cleared
// from a separate remaining value instead, which after exhaustion
// holds exactly the bits no entry covered.
//
// Aliased entries with identical bits all match and are yielded in
// declaration order.
type MatchIter[B bits.Bits] struct {
	table  *Table[B]
	idx    int
	source B
	state  B
	named  bool
}

// Next yields the next matching entry and its value. ok is false once
// the table is exhausted.
func (it *MatchIter[B]) Next() (flag Flag[B], value Value[B], ok bool) {
	for it.idx < len(it.table.flags) {
		f := it.table.flags[it.idx]
		it.idx++

		if it.named && !f.IsNamed() {
			continue
		}
		if it.source&f.bits == f.bits {
			it.state &^= f.bits
			return f, Value[B]{table: it.table, bits: f.bits}, true
		}
	}
	return Flag[B]{}, Value[B]{}, false
}

// Remaining returns the source bits not yet claimed by a yielded
// entry. Once Next has returned false it is exactly the bits that
// correspond to no matchable entry.
func (it *MatchIter[B]) Remaining() Value[B] {
	return Value[B]{table: it.table, bits: it.state}
}

// NameIter yields the named flags contained in a value together with
// their names, in declaration order. Anonymous entries are skipped
// entirely; their bits stay in Remaining so that formatting can render
// them as hex.
type NameIter[B bits.Bits] struct {
	m MatchIter[B]
}

// Next yields the next matching named flag.
func (it *NameIter[B]) Next() (name string, value Value[B], ok bool) {
	f, v, ok := it.m.Next()
	if !ok {
		return "", Value[B]{}, false
	}
	return f.name, v, true
}

// Remaining returns the source bits not claimed by a yielded entry.
func (it *NameIter[B]) Remaining() Value[B] {
	return it.m.Remaining()
}

// Iter is the canonical minimal decomposition of a value: every
// matching entry (named and anonymous) in declaration order, then, if
// any bits remain uncovered, exactly one final unnamed value holding
// them. OR-folding the yielded values always reconstructs the source
// exactly, unknown bits included.
type Iter[B bits.Bits] struct {
	m    MatchIter[B]
	done bool
}

// Next yields the next component of the decomposition.
func (it *Iter[B]) Next() (Value[B], bool) {
	if _, v, ok := it.m.Next(); ok {
		return v, true
	}
	if !it.done {
		it.done = true
		if rem := it.m.Remaining(); !rem.IsEmpty() {
			return rem, true
		}
	}
	return Value[B]{}, false
}

// IterMatches returns a fresh iterator over every declared entry
// contained in v, anonymous entries included. The value is unaffected.
func (v Value[B]) IterMatches() *MatchIter[B] {
	return &MatchIter[B]{table: v.table, source: v.bits, state: v.bits}
}

// IterNames returns a fresh iterator over the named flags contained in
// v. The value is unaffected.
func (v Value[B]) IterNames() *NameIter[B] {
	return &NameIter[B]{m: MatchIter[B]{table: v.table, source: v.bits, state: v.bits, named: true}}
}

// Iter returns a fresh canonical decomposition iterator over v. The
// value is unaffected.
func (v Value[B]) Iter() *Iter[B] {
	return &Iter[B]{m: MatchIter[B]{table: v.table, source: v.bits, state: v.bits}}
}
