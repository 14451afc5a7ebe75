package flags

import (
	"go.uber.org/atomic"

	"github.com/bitflags/bitflags/pkg/bits"
)

// Atomic holds a flags value that can be loaded, stored and combined
// atomically. The storage is widened to a uint64 cell; each operation
// is a single atomic primitive (or a compare-and-swap loop over one),
// with the ordering guarantees of the Go memory model and nothing
// more. Multiple operations do not compose into a transaction.
type Atomic[B bits.Bits] struct {
	table *Table[B]
	cell  atomic.Uint64
}

// NewAtomic returns an atomic cell holding v.
func NewAtomic[B bits.Bits](v Value[B]) *Atomic[B] {
	a := &Atomic[B]{table: v.table}
	a.cell.Store(bits.ToUint64(v.Bits()))
	return a
}

// Load atomically returns the current value.
func (a *Atomic[B]) Load() Value[B] {
	return a.value(a.cell.Load())
}

// Store atomically replaces the current value with v.
func (a *Atomic[B]) Store(v Value[B]) {
	a.cell.Store(bits.ToUint64(v.Bits()))
}

// Swap atomically replaces the current value with v and returns the
// previous value.
func (a *Atomic[B]) Swap(v Value[B]) Value[B] {
	return a.value(a.cell.Swap(bits.ToUint64(v.Bits())))
}

// FetchInsert atomically ORs the bits of v into the cell and returns
// the previous value.
func (a *Atomic[B]) FetchInsert(v Value[B]) Value[B] {
	return a.fetchUpdate(func(old uint64) uint64 { return old | bits.ToUint64(v.Bits()) })
}

// FetchRemove atomically clears the bits of v from the cell and
// returns the previous value.
func (a *Atomic[B]) FetchRemove(v Value[B]) Value[B] {
	return a.fetchUpdate(func(old uint64) uint64 { return old &^ bits.ToUint64(v.Bits()) })
}

// FetchToggle atomically XORs the bits of v into the cell and returns
// the previous value.
func (a *Atomic[B]) FetchToggle(v Value[B]) Value[B] {
	return a.fetchUpdate(func(old uint64) uint64 { return old ^ bits.ToUint64(v.Bits()) })
}

func (a *Atomic[B]) fetchUpdate(f func(uint64) uint64) Value[B] {
	for {
		old := a.cell.Load()
		if a.cell.CompareAndSwap(old, f(old)) {
			return a.value(old)
		}
	}
}

func (a *Atomic[B]) value(u uint64) Value[B] {
	return Value[B]{table: a.table, bits: bits.FromUint64[B](u)}
}
