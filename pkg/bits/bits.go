package bits

import (
	"fmt"
	"strconv"
	"strings"
)

// Bits is the set of integer kinds usable as flags storage.
type Bits interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Empty returns the storage value with no bits set. It is the identity
// for OR and XOR and the annihilator for AND.
func Empty[B Bits]() B {
	var zero B
	return zero
}

// All returns the storage value with every bit set, masked to the
// width of B. For signed storage this is -1, whose bit pattern is all
// ones.
func All[B Bits]() B {
	return ^Empty[B]()
}

// Width returns the number of bits in B.
func Width[B Bits]() int {
	w := 0
	for v := All[B](); v != Empty[B](); v <<= 1 {
		w++
	}
	return w
}

// Signed reports whether B is a signed integer kind.
func Signed[B Bits]() bool {
	return All[B]() < Empty[B]()
}

// ToUint64 returns the unsigned bit pattern of b, masked to the width
// of B. Signed values do not sign-extend past the storage width.
func ToUint64[B Bits](b B) uint64 {
	return uint64(b) & widthMask(Width[B]())
}

// FromUint64 converts an unsigned bit pattern back to B, truncating to
// the width of B.
func FromUint64[B Bits](u uint64) B {
	return B(u & widthMask(Width[B]()))
}

// FormatHex renders the unsigned bit pattern of b as 0x-prefixed
// lowercase hex with no leading zeros, e.g. 0x0, 0x1f, 0xff.
func FormatHex[B Bits](b B) string {
	return "0x" + strconv.FormatUint(ToUint64(b), 16)
}

// ParseHex parses a hex digit string (without the 0x prefix) into B.
// It is the exact left inverse of FormatHex. Values that do not fit
// the width of B are rejected.
func ParseHex[B Bits](s string) (B, error) {
	u, err := strconv.ParseUint(s, 16, Width[B]())
	if err != nil {
		// strconv wraps the input in its own error; reduce it to the
		// reason so callers can build their own message.
		var reason error = err
		if ne, ok := err.(*strconv.NumError); ok {
			reason = ne.Err
		}
		return Empty[B](), fmt.Errorf("parse hex %q: %w", s, reason)
	}
	return B(u), nil
}

// ParseLiteral parses an integer literal in any Go base syntax
// (0x hex, 0o octal, 0b binary, decimal) into B, rejecting values that
// do not fit the width of B. Declaration loaders use it for raw bit
// patterns.
func ParseLiteral[B Bits](s string) (B, error) {
	u, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		var reason error = err
		if ne, ok := err.(*strconv.NumError); ok {
			reason = ne.Err
		}
		return Empty[B](), fmt.Errorf("parse literal %q: %w", s, reason)
	}
	if u&^widthMask(Width[B]()) != 0 {
		return Empty[B](), fmt.Errorf("parse literal %q: value exceeds %d-bit storage", s, Width[B]())
	}
	return B(u), nil
}

func widthMask(w int) uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << w) - 1
}
