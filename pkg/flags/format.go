package flags

import (
	"io"
	"strings"

	"github.com/bitflags/bitflags/pkg/bits"
)

// Format writes the canonical text form of v: the contained named
// flags joined by " | " (aliases all emitted, in declaration order),
// then any bits not covered by a named entry as a lowercase hex
// number. A value with nothing else to print renders as 0x0, so log
// output is never blank; 0x0 parses back to the empty value.
func (v Value[B]) Format(w io.Writer) error {
	first := true
	it := v.IterNames()
	for {
		name, _, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			if _, err := io.WriteString(w, " | "); err != nil {
				return err
			}
		}
		first = false
		if _, err := io.WriteString(w, name); err != nil {
			return err
		}
	}

	remaining := it.Remaining().Bits()
	if remaining != bits.Empty[B]() || first {
		if !first {
			if _, err := io.WriteString(w, " | "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, bits.FormatHex(remaining)); err != nil {
			return err
		}
	}

	return nil
}

// String returns the canonical text form of v. Parse is its exact
// left inverse.
func (v Value[B]) String() string {
	var sb strings.Builder
	// Writes to a strings.Builder cannot fail.
	_ = v.Format(&sb)
	return sb.String()
}
