package flags

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three parse failure kinds. Use errors.Is to
// classify an error from Parse; the typed errors below carry the
// offending token.
var (
	// ErrEmptyFlag is returned when a |-delimited slot contains no
	// token at all, e.g. "A||B" or a lone separator.
	ErrEmptyFlag = errors.New("encountered empty flag")

	// ErrInvalidNamedFlag matches errors returned when a token names
	// no declared flag.
	ErrInvalidNamedFlag = errors.New("unrecognized named flag")

	// ErrInvalidHexFlag matches errors returned when a 0x token fails
	// to parse as hex of the storage width.
	ErrInvalidHexFlag = errors.New("invalid hex flag")

	// ErrUnboundValue is returned when unmarshaling into a Value that
	// was not obtained from a Table.
	ErrUnboundValue = errors.New("flags: value not bound to a table")
)

// InvalidNamedFlagError reports a token that matched no declared named
// flag. It satisfies errors.Is(err, ErrInvalidNamedFlag).
type InvalidNamedFlagError struct {
	// Flag is the offending token.
	Flag string
}

func (e *InvalidNamedFlagError) Error() string {
	return fmt.Sprintf("unrecognized named flag `%s`", e.Flag)
}

func (e *InvalidNamedFlagError) Is(target error) bool {
	return target == ErrInvalidNamedFlag
}

// InvalidHexFlagError reports a 0x token that failed to parse as hex
// of the storage width, either from a bad digit or from a value
// exceeding the width. It satisfies errors.Is(err, ErrInvalidHexFlag).
type InvalidHexFlagError struct {
	// Flag is the offending token with the 0x prefix stripped.
	Flag string
}

func (e *InvalidHexFlagError) Error() string {
	return fmt.Sprintf("invalid hex flag `%s`", e.Flag)
}

func (e *InvalidHexFlagError) Is(target error) bool {
	return target == ErrInvalidHexFlag
}
