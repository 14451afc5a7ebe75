package flags

import (
	"strings"

	"github.com/bitflags/bitflags/pkg/bits"
)

// Parse converts the canonical text form back into a value. The
// grammar is whitespace-insensitive around | and case-sensitive for
// names:
//
//	Flags := Flag ('|' Flag)* | ε
//	Flag  := Identifier | '0x' HexDigit+
//
// Empty input yields the empty value. Hex tokens are parsed to the
// storage width and OR'ed in verbatim, so unknown bits survive a
// format/parse round trip. The first failing token aborts the parse:
// ErrEmptyFlag for a blank slot, InvalidHexFlagError for a bad hex
// token, InvalidNamedFlagError for an unknown name.
func (t *Table[B]) Parse(s string) (Value[B], error) {
	v := t.Empty()

	s = strings.TrimSpace(s)
	if s == "" {
		return v, nil
	}

	for _, tok := range strings.Split(s, "|") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return t.Empty(), ErrEmptyFlag
		}

		var parsed Value[B]
		if hex, ok := strings.CutPrefix(tok, "0x"); ok {
			b, err := bits.ParseHex[B](hex)
			if err != nil {
				return t.Empty(), &InvalidHexFlagError{Flag: hex}
			}
			parsed = t.FromBitsRetain(b)
		} else {
			named, ok := t.FromName(tok)
			if !ok {
				return t.Empty(), &InvalidNamedFlagError{Flag: tok}
			}
			parsed = named
		}

		v.Insert(parsed)
	}

	return v, nil
}
