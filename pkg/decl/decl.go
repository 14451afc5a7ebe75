package decl

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is a flag-table declaration loaded from YAML.
type Document struct {
	// Storage names the backing integer kind: int8 through uint64,
	// int, uint or uintptr.
	Storage string `yaml:"storage"`

	// Flags lists the declared entries in order. Order is canonical
	// for the resulting table.
	Flags []Entry `yaml:"flags"`
}

// Entry is one declared flag.
type Entry struct {
	// Name is the flag name, or nil for an anonymous entry. A name
	// key that is present but empty is an error.
	Name *string `yaml:"name"`

	// Bits is the bit expression for the entry.
	Bits Expr `yaml:"bits"`
}

// Expr is the raw text of a bit expression. It captures the scalar
// verbatim so that unquoted YAML integers and expressions like
// "READ | WRITE" are both handled.
type Expr string

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Expr) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: bits must be a scalar", node.Line)
	}
	*e = Expr(node.Value)
	return nil
}

// storageKind describes one recognized storage name.
type storageKind struct {
	width  int // 0 means platform word size
	signed bool
}

var storageKinds = map[string]storageKind{
	"int8":    {width: 8, signed: true},
	"int16":   {width: 16, signed: true},
	"int32":   {width: 32, signed: true},
	"int64":   {width: 64, signed: true},
	"int":     {width: 0, signed: true},
	"uint8":   {width: 8},
	"uint16":  {width: 16},
	"uint32":  {width: 32},
	"uint64":  {width: 64},
	"uint":    {width: 0},
	"uintptr": {width: 0},
}

// Load reads and parses a declaration file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse parses a declaration document and validates everything that
// does not depend on the concrete storage type: the storage kind must
// be recognized, every entry needs a bit expression, present names
// must be non-empty and unique.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse declaration: %w", err)
	}

	if doc.Storage == "" {
		return nil, fmt.Errorf("declaration is missing a storage kind")
	}
	if _, ok := storageKinds[doc.Storage]; !ok {
		return nil, fmt.Errorf("unknown storage kind %q", doc.Storage)
	}

	seen := make(map[string]bool, len(doc.Flags))
	for i, e := range doc.Flags {
		if e.Bits == "" {
			return nil, fmt.Errorf("flag %d: missing bits", i)
		}
		if e.Name != nil {
			if *e.Name == "" {
				return nil, fmt.Errorf("flag %d: name must not be empty (omit the key for an anonymous entry)", i)
			}
			if seen[*e.Name] {
				return nil, fmt.Errorf("flag %d: duplicate name %q", i, *e.Name)
			}
			seen[*e.Name] = true
		}
	}

	return &doc, nil
}
