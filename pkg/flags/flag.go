package flags

import "github.com/bitflags/bitflags/pkg/bits"

// Flag is one declared entry in a flags table: a name and a bit
// pattern. The pattern may span multiple bits (a composite flag),
// share bits with other entries (an alias or overlap), or be zero.
type Flag[B bits.Bits] struct {
	name string
	bits B
}

// NewFlag returns a named flag entry.
func NewFlag[B bits.Bits](name string, bits B) Flag[B] {
	return Flag[B]{name: name, bits: bits}
}

// NewAnonymous returns an unnamed flag entry. Anonymous entries extend
// the set of bits a table considers valid but are never matched by
// name and never appear in named iteration.
func NewAnonymous[B bits.Bits](bits B) Flag[B] {
	return Flag[B]{bits: bits}
}

// Name returns the entry's name, or "" for an anonymous entry.
func (f Flag[B]) Name() string {
	return f.name
}

// Bits returns the entry's bit pattern.
func (f Flag[B]) Bits() B {
	return f.bits
}

// IsNamed reports whether the entry has a name.
func (f Flag[B]) IsNamed() bool {
	return f.name != ""
}
