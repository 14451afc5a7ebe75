package decl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitflags/bitflags/pkg/bits"
	"github.com/bitflags/bitflags/pkg/flags"
)

// Build resolves a document's bit expressions and binds the table to
// the storage type B. B must match the declared storage kind in width
// and signedness; Build does not silently widen or narrow.
func Build[B bits.Bits](doc *Document) (*flags.Table[B], error) {
	k, ok := storageKinds[doc.Storage]
	if !ok {
		return nil, fmt.Errorf("unknown storage kind %q", doc.Storage)
	}
	width := k.width
	if width == 0 {
		width = strconv.IntSize // int, uint and uintptr are word-sized on all supported platforms
	}
	if width != bits.Width[B]() || k.signed != bits.Signed[B]() {
		return nil, fmt.Errorf("declaration wants %s storage, table built over %d-bit signed=%t",
			doc.Storage, bits.Width[B](), bits.Signed[B]())
	}

	resolved := make(map[string]B, len(doc.Flags))
	entries := make([]flags.Flag[B], 0, len(doc.Flags))
	for i, e := range doc.Flags {
		b, err := evalExpr(string(e.Bits), resolved)
		if err != nil {
			return nil, fmt.Errorf("flag %d: %w", i, err)
		}
		if e.Name != nil {
			resolved[*e.Name] = b
			entries = append(entries, flags.NewFlag(*e.Name, b))
		} else {
			entries = append(entries, flags.NewAnonymous(b))
		}
	}

	return flags.NewTable(entries...), nil
}

// evalExpr evaluates a |-joined bit expression against the names
// declared so far. Terms starting with a digit are integer literals;
// anything else must name an earlier entry, so forward references fail
// as undefined names.
func evalExpr[B bits.Bits](expr string, resolved map[string]B) (B, error) {
	out := bits.Empty[B]()
	for _, term := range strings.Split(expr, "|") {
		term = strings.TrimSpace(term)
		if term == "" {
			return out, fmt.Errorf("empty term in bits expression %q", expr)
		}
		if term[0] >= '0' && term[0] <= '9' {
			b, err := bits.ParseLiteral[B](term)
			if err != nil {
				return out, err
			}
			out |= b
			continue
		}
		b, ok := resolved[term]
		if !ok {
			return out, fmt.Errorf("undefined flag name %q", term)
		}
		out |= b
	}
	return out, nil
}
