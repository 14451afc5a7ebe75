package flags_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitflags/bitflags/pkg/flags"
)

// newFileTable returns the table used by most tests:
// READ=0x1, WRITE=0x2, EXEC=0x4, RW=READ|WRITE.
func newFileTable() *flags.Table[uint8] {
	return flags.NewTable(
		flags.NewFlag("READ", uint8(0x1)),
		flags.NewFlag("WRITE", uint8(0x2)),
		flags.NewFlag("EXEC", uint8(0x4)),
		flags.NewFlag("RW", uint8(0x3)),
	)
}

func TestEmptyAndAll(t *testing.T) {
	ft := newFileTable()

	assert.True(t, ft.Empty().IsEmpty())
	assert.Equal(t, uint8(0), ft.Empty().Bits())
	assert.Equal(t, uint8(0x7), ft.All().Bits())
	assert.True(t, ft.All().IsAll())
	assert.False(t, ft.Empty().IsAll())
}

func TestAllIncludesAnonymousEntries(t *testing.T) {
	ft := flags.NewTable(
		flags.NewFlag("A", uint8(0x1)),
		flags.NewAnonymous(uint8(0x8)),
	)

	assert.Equal(t, uint8(0x9), ft.AllBits())
}

func TestFromBits(t *testing.T) {
	ft := newFileTable()

	v, ok := ft.FromBits(0x5)
	require.True(t, ok)
	assert.Equal(t, uint8(0x5), v.Bits())

	_, ok = ft.FromBits(0x8)
	assert.False(t, ok)

	// Bits covered only by an anonymous entry are still valid.
	at := flags.NewTable(
		flags.NewFlag("A", uint8(0x1)),
		flags.NewAnonymous(uint8(0x8)),
	)
	v, ok = at.FromBits(0x9)
	require.True(t, ok)
	assert.Equal(t, uint8(0x9), v.Bits())
}

func TestFromBitsTruncate(t *testing.T) {
	ft := newFileTable()

	assert.Equal(t, uint8(0x5), ft.FromBitsTruncate(0xfd).Bits())
	assert.Equal(t, uint8(0), ft.FromBitsTruncate(0xf8).Bits())
}

// Truncation recognizes entries atomically: a multi-bit flag only
// contributes when every one of its bits is present.
func TestFromBitsTruncateCompositeAtomic(t *testing.T) {
	ct := flags.NewTable(
		flags.NewFlag("AB", uint8(0x3)),
	)

	assert.Equal(t, uint8(0), ct.FromBitsTruncate(0x1).Bits())
	assert.Equal(t, uint8(0x3), ct.FromBitsTruncate(0x3).Bits())
	assert.Equal(t, uint8(0x3), ct.FromBitsTruncate(0xf3).Bits())
}

func TestFromBitsTruncateIdempotent(t *testing.T) {
	ft := newFileTable()

	for b := 0; b < 256; b++ {
		once := ft.FromBitsTruncate(uint8(b))
		twice := ft.FromBitsTruncate(once.Bits())
		assert.Equal(t, once, twice, "bits %#x", b)
	}
}

// FromBits succeeds exactly when truncation would change nothing.
func TestFromBitsAgreesWithTruncate(t *testing.T) {
	ft := newFileTable()

	for b := 0; b < 256; b++ {
		_, ok := ft.FromBits(uint8(b))
		assert.Equal(t, ft.FromBitsTruncate(uint8(b)).Bits() == uint8(b), ok, "bits %#x", b)
	}
}

func TestFromBitsRetainKeepsUnknownBits(t *testing.T) {
	ft := newFileTable()

	v := ft.FromBitsRetain(0xff)
	assert.Equal(t, uint8(0xff), v.Bits())
	assert.True(t, v.IsAll(), "unknown bits must not spoil IsAll")
	assert.False(t, v.IsEmpty())
}

func TestFromName(t *testing.T) {
	ft := newFileTable()

	v, ok := ft.FromName("WRITE")
	require.True(t, ok)
	assert.Equal(t, uint8(0x2), v.Bits())

	_, ok = ft.FromName("write")
	assert.False(t, ok, "matching is case-sensitive")

	_, ok = ft.FromName("DELETE")
	assert.False(t, ok)
}

func TestFromNameSkipsAnonymousAndPrefersFirst(t *testing.T) {
	at := flags.NewTable(
		flags.NewAnonymous(uint8(0x8)),
		flags.NewFlag("A", uint8(0x1)),
		flags.NewFlag("A", uint8(0x2)), // shadowed by the first A
	)

	v, ok := at.FromName("A")
	require.True(t, ok)
	assert.Equal(t, uint8(0x1), v.Bits())

	_, ok = at.FromName("")
	assert.False(t, ok, "anonymous entries are not matched by name")
}

func TestContainsAndIntersects(t *testing.T) {
	ft := newFileTable()
	rw, _ := ft.FromName("RW")
	read, _ := ft.FromName("READ")
	exec, _ := ft.FromName("EXEC")

	assert.True(t, rw.Contains(read))
	assert.False(t, read.Contains(rw))
	assert.True(t, rw.Intersects(read))
	assert.False(t, rw.Intersects(exec))
	assert.True(t, rw.Contains(ft.Empty()))
	assert.False(t, rw.Intersects(ft.Empty()))
}

// A zero-bit flag is contained in every value, yet its own value is
// still empty.
func TestZeroFlagContainsParadox(t *testing.T) {
	zt := flags.NewTable(
		flags.NewFlag("NONE", uint8(0)),
		flags.NewFlag("A", uint8(0x1)),
	)
	none, ok := zt.FromName("NONE")
	require.True(t, ok)

	for b := 0; b < 256; b++ {
		assert.True(t, zt.FromBitsRetain(uint8(b)).Contains(none), "bits %#x", b)
	}
	assert.True(t, none.IsEmpty())
	assert.True(t, zt.Empty().Contains(none))
}

func TestMutators(t *testing.T) {
	ft := newFileTable()
	read, _ := ft.FromName("READ")
	write, _ := ft.FromName("WRITE")

	v := ft.Empty()
	v.Insert(read)
	assert.Equal(t, uint8(0x1), v.Bits())

	v.Insert(write)
	assert.Equal(t, uint8(0x3), v.Bits())

	v.Remove(read)
	assert.Equal(t, uint8(0x2), v.Bits())

	v.Toggle(write)
	assert.Equal(t, uint8(0x0), v.Bits())

	v.Set(read, true)
	assert.Equal(t, uint8(0x1), v.Bits())
	v.Set(read, false)
	assert.Equal(t, uint8(0x0), v.Bits())
}

func TestInsertAllAndFromSlice(t *testing.T) {
	ft := newFileTable()
	read, _ := ft.FromName("READ")
	exec, _ := ft.FromName("EXEC")

	v := ft.Empty()
	v.InsertAll(read, exec)
	assert.Equal(t, uint8(0x5), v.Bits())

	assert.Equal(t, v, ft.FromSlice([]flags.Value[uint8]{read, exec}))
	assert.Equal(t, ft.Empty(), ft.FromSlice(nil))
}

func TestAlgebra(t *testing.T) {
	ft := newFileTable()
	a := ft.FromBitsRetain(0x3)
	b := ft.FromBitsRetain(0x6)

	assert.Equal(t, uint8(0x7), a.Union(b).Bits())
	assert.Equal(t, uint8(0x2), a.Intersection(b).Bits())
	assert.Equal(t, uint8(0x1), a.Difference(b).Bits())
	assert.Equal(t, uint8(0x5), a.SymmetricDifference(b).Bits())
}

// Binary operations are plain bitwise arithmetic: unknown bits pass
// through untouched.
func TestAlgebraPreservesUnknownBits(t *testing.T) {
	ft := newFileTable()
	a := ft.FromBitsRetain(0x83)
	b := ft.FromBitsRetain(0x41)

	assert.Equal(t, uint8(0xc3), a.Union(b).Bits())
	assert.Equal(t, uint8(0x01), a.Intersection(b).Bits())
	assert.Equal(t, uint8(0x82), a.Difference(b).Bits())
	assert.Equal(t, uint8(0xc2), a.SymmetricDifference(b).Bits())
}

func TestAlgebraLaws(t *testing.T) {
	ft := newFileTable()
	samples := []uint8{0x00, 0x01, 0x03, 0x07, 0x55, 0x80, 0xff}

	for _, x := range samples {
		for _, y := range samples {
			a, b := ft.FromBitsRetain(x), ft.FromBitsRetain(y)
			assert.Equal(t, a.Union(b), b.Union(a))
			assert.Equal(t, a.Intersection(b), b.Intersection(a))
			assert.Equal(t, a.SymmetricDifference(b), b.SymmetricDifference(a))

			for _, z := range samples {
				c := ft.FromBitsRetain(z)
				assert.Equal(t, a.Union(b).Union(c), a.Union(b.Union(c)))
				assert.Equal(t, a.Intersection(b).Intersection(c), a.Intersection(b.Intersection(c)))
			}
		}
	}
}

// Complement truncates: inverting a value drops unknown bits instead
// of inverting them into new unknown territory.
func TestComplementTruncates(t *testing.T) {
	at := flags.NewTable(flags.NewFlag("A", uint8(0x1)))

	got := at.FromBitsRetain(0x2).Complement()
	assert.Equal(t, uint8(0x1), got.Bits())

	assert.Equal(t, at.Empty(), at.FromBitsRetain(0xff).Complement())
	a, _ := at.FromName("A")
	assert.Equal(t, a, at.Empty().Complement())
}

func TestEquality(t *testing.T) {
	ft := newFileTable()
	rw, _ := ft.FromName("RW")

	// Equality is raw-bits equality, however the bits were produced.
	combined := ft.Empty()
	read, _ := ft.FromName("READ")
	write, _ := ft.FromName("WRITE")
	combined.InsertAll(read, write)
	assert.Equal(t, rw, combined)

	// Values are valid map keys.
	seen := map[flags.Value[uint8]]int{rw: 1}
	assert.Equal(t, 1, seen[combined])
}

func TestCompare(t *testing.T) {
	ft := newFileTable()

	assert.Equal(t, -1, ft.FromBitsRetain(0x1).Compare(ft.FromBitsRetain(0x2)))
	assert.Equal(t, 1, ft.FromBitsRetain(0x4).Compare(ft.FromBitsRetain(0x2)))
	assert.Equal(t, 0, ft.FromBitsRetain(0x2).Compare(ft.FromBitsRetain(0x2)))
}

func TestCompareSignedStorageUsesBitPattern(t *testing.T) {
	st := flags.NewTable(
		flags.NewFlag("LOW", int8(0x1)),
		flags.NewFlag("HIGH", int8(-128)),
	)
	low, _ := st.FromName("LOW")
	high, _ := st.FromName("HIGH")

	// 0x80 orders above 0x01 even though -128 < 1 as integers.
	assert.Equal(t, 1, high.Compare(low))
}

func TestSignedStorage(t *testing.T) {
	st := flags.NewTable(
		flags.NewFlag("LOW", int8(0x1)),
		flags.NewFlag("HIGH", int8(-128)),
	)

	assert.Equal(t, int8(-127), st.AllBits())
	v := st.All()
	assert.True(t, v.IsAll())
	assert.Equal(t, "LOW | HIGH", v.String())

	parsed, err := st.Parse("HIGH")
	require.NoError(t, err)
	assert.Equal(t, int8(-128), parsed.Bits())
}
