// Package bits defines the storage contract for flags types.
//
// A storage type is any fixed-width integer kind. Signed storage is
// supported by mapping values through their unsigned bit pattern, so a
// flags type backed by int8 behaves exactly like one backed by uint8.
//
// The package provides the two sentinels (Empty, All), width and
// bit-pattern helpers, and the hex format/parse pair used by the
// canonical text form. Hex output is lowercase with a 0x prefix and no
// leading zeros; ParseHex accepts exactly what FormatHex produces (plus
// uppercase digits) and rejects values that do not fit the storage
// width.
package bits
