// Package commands implements the flagcalc subcommands. Each RunX
// function takes raw arguments plus output writers and returns a
// process exit code, so main stays a thin dispatcher and tests can
// drive commands directly.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitflags/bitflags/pkg/bits"
	"github.com/bitflags/bitflags/pkg/decl"
	"github.com/bitflags/bitflags/pkg/flags"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// Runner evaluates operations against one loaded flag table. The
// storage type is fixed when the declaration is opened, so callers
// stay generic-free.
type Runner interface {
	// Show lists the declared entries and the all() value.
	Show(w io.Writer)

	// All prints the value with every declared bit set.
	All(w io.Writer)

	// Parse parses a flag expression and prints its bits, canonical
	// form and decomposition.
	Parse(w io.Writer, input string) error

	// Format renders a 0x hex value in canonical text form, after
	// truncating unknown bits unless retain is set.
	Format(w io.Writer, input string, retain bool) error

	// Check reports whether a 0x hex value contains only declared
	// bits, printing the unknown ones otherwise.
	Check(w io.Writer, input string) (bool, error)

	// Op parses two flag expressions and prints the result of the
	// named set operation: union, intersect, difference or symdiff.
	Op(w io.Writer, op, left, right string) error

	// Not parses a flag expression and prints its complement.
	Not(w io.Writer, input string) error
}

// Open loads a declaration file and binds it to the storage kind it
// declares.
func Open(path string) (Runner, error) {
	doc, err := decl.Load(path)
	if err != nil {
		return nil, err
	}

	switch doc.Storage {
	case "int8":
		return newRunner[int8](doc)
	case "int16":
		return newRunner[int16](doc)
	case "int32":
		return newRunner[int32](doc)
	case "int64":
		return newRunner[int64](doc)
	case "int":
		return newRunner[int](doc)
	case "uint8":
		return newRunner[uint8](doc)
	case "uint16":
		return newRunner[uint16](doc)
	case "uint32":
		return newRunner[uint32](doc)
	case "uint64":
		return newRunner[uint64](doc)
	case "uint":
		return newRunner[uint](doc)
	case "uintptr":
		return newRunner[uintptr](doc)
	default:
		return nil, fmt.Errorf("unknown storage kind %q", doc.Storage)
	}
}

func newRunner[B bits.Bits](doc *decl.Document) (Runner, error) {
	t, err := decl.Build[B](doc)
	if err != nil {
		return nil, err
	}
	return &tableRunner[B]{table: t, storage: doc.Storage}, nil
}

type tableRunner[B bits.Bits] struct {
	table   *flags.Table[B]
	storage string
}

func (r *tableRunner[B]) Show(w io.Writer) {
	fmt.Fprintf(w, "storage: %s (%d bits)\n", r.storage, bits.Width[B]())
	for i := 0; i < r.table.Len(); i++ {
		f := r.table.Flag(i)
		name := f.Name()
		if name == "" {
			name = "(anonymous)"
		}
		fmt.Fprintf(w, "%3d  %-24s %s\n", i, name, bits.FormatHex(f.Bits()))
	}
	r.All(w)
}

func (r *tableRunner[B]) All(w io.Writer) {
	fmt.Fprintf(w, "all: %s = %s\n", bits.FormatHex(r.table.AllBits()), r.table.All())
}

func (r *tableRunner[B]) Parse(w io.Writer, input string) error {
	v, err := r.table.Parse(input)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "bits:      %s\n", bits.FormatHex(v.Bits()))
	fmt.Fprintf(w, "canonical: %s\n", v)
	r.decompose(w, v)
	return nil
}

func (r *tableRunner[B]) Format(w io.Writer, input string, retain bool) error {
	b, err := r.rawBits(input)
	if err != nil {
		return err
	}
	v := r.table.FromBitsTruncate(b)
	if retain {
		v = r.table.FromBitsRetain(b)
	}
	fmt.Fprintln(w, v.String())
	return nil
}

func (r *tableRunner[B]) Check(w io.Writer, input string) (bool, error) {
	b, err := r.rawBits(input)
	if err != nil {
		return false, err
	}
	if v, ok := r.table.FromBits(b); ok {
		fmt.Fprintf(w, "ok: %s\n", v)
		return true, nil
	}
	fmt.Fprintf(w, "unknown bits: %s\n", bits.FormatHex(b&^r.table.AllBits()))
	return false, nil
}

func (r *tableRunner[B]) Op(w io.Writer, op, left, right string) error {
	lv, err := r.table.Parse(left)
	if err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	rv, err := r.table.Parse(right)
	if err != nil {
		return fmt.Errorf("right operand: %w", err)
	}

	var v flags.Value[B]
	switch op {
	case "union":
		v = lv.Union(rv)
	case "intersect":
		v = lv.Intersection(rv)
	case "difference":
		v = lv.Difference(rv)
	case "symdiff":
		v = lv.SymmetricDifference(rv)
	default:
		return fmt.Errorf("unknown operation %q", op)
	}

	fmt.Fprintf(w, "%s = %s\n", bits.FormatHex(v.Bits()), v)
	return nil
}

func (r *tableRunner[B]) Not(w io.Writer, input string) error {
	v, err := r.table.Parse(input)
	if err != nil {
		return err
	}
	c := v.Complement()
	fmt.Fprintf(w, "%s = %s\n", bits.FormatHex(c.Bits()), c)
	return nil
}

func (r *tableRunner[B]) decompose(w io.Writer, v flags.Value[B]) {
	it := v.IterMatches()
	for {
		f, m, ok := it.Next()
		if !ok {
			break
		}
		name := f.Name()
		if name == "" {
			name = "(anonymous)"
		}
		fmt.Fprintf(w, "  %-24s %s\n", name, bits.FormatHex(m.Bits()))
	}
	if rem := it.Remaining(); !rem.IsEmpty() {
		fmt.Fprintf(w, "  %-24s %s\n", "(unknown)", bits.FormatHex(rem.Bits()))
	}
}

// rawBits parses a 0x-prefixed hex value of the storage width.
func (r *tableRunner[B]) rawBits(input string) (B, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(input), "0x")
	if !ok {
		return bits.Empty[B](), fmt.Errorf("expected a 0x hex value, got %q", input)
	}
	b, err := bits.ParseHex[B](hex)
	if err != nil {
		return bits.Empty[B](), fmt.Errorf("invalid hex value %q", input)
	}
	return b, nil
}
