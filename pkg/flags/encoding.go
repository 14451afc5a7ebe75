package flags

import (
	"encoding/binary"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/bitflags/bitflags/pkg/bits"
)

// The adapters below are written purely against the public contract:
// Bits, FromBitsRetain, String and Parse. Human-readable encodings
// (text, JSON via encoding.TextMarshaler, YAML) use the canonical
// string form; compact encodings (CBOR, binary) use the raw unsigned
// bit pattern. Unmarshaling requires a Value obtained from a Table;
// unmarshaling into a zero Value returns ErrUnboundValue.

// MarshalText encodes v in the canonical text form. encoding/json uses
// this to render values as strings.
func (v Value[B]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses the canonical text form into v, replacing its
// bits. The receiver must already be bound to a table.
func (v *Value[B]) UnmarshalText(text []byte) error {
	if v.table == nil {
		return ErrUnboundValue
	}
	parsed, err := v.table.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalCBOR encodes the raw unsigned bit pattern as a CBOR integer.
func (v Value[B]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(bits.ToUint64(v.bits))
}

// UnmarshalCBOR decodes a CBOR integer into v, preserving unknown
// bits. Values exceeding the storage width are rejected.
func (v *Value[B]) UnmarshalCBOR(data []byte) error {
	if v.table == nil {
		return ErrUnboundValue
	}
	var u uint64
	if err := cbor.Unmarshal(data, &u); err != nil {
		return fmt.Errorf("failed to decode flags: %w", err)
	}
	if bits.ToUint64(bits.FromUint64[B](u)) != u {
		return fmt.Errorf("flags value %#x exceeds %d-bit storage", u, bits.Width[B]())
	}
	*v = v.table.FromBitsRetain(bits.FromUint64[B](u))
	return nil
}

// MarshalYAML encodes v in the canonical text form.
func (v Value[B]) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML parses a YAML string in the canonical text form.
func (v *Value[B]) UnmarshalYAML(node *yaml.Node) error {
	if v.table == nil {
		return ErrUnboundValue
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := v.table.Parse(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalBinary encodes the raw bit pattern as exactly width/8
// little-endian bytes.
func (v Value[B]) MarshalBinary() ([]byte, error) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], bits.ToUint64(v.bits))
	return buf[:bits.Width[B]()/8], nil
}

// UnmarshalBinary decodes exactly width/8 little-endian bytes into v,
// preserving unknown bits.
func (v *Value[B]) UnmarshalBinary(data []byte) error {
	if v.table == nil {
		return ErrUnboundValue
	}
	n := bits.Width[B]() / 8
	if len(data) != n {
		return fmt.Errorf("flags value needs %d bytes, got %d", n, len(data))
	}
	var buf [8]byte
	copy(buf[:], data)
	*v = v.table.FromBitsRetain(bits.FromUint64[B](binary.LittleEndian.Uint64(buf[:])))
	return nil
}
