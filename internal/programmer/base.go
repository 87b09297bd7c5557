// Package programmer implements the base/bitwise engine: one integer
// register rendered in binary, octal, decimal or hexadecimal, digit entry
// validated against the active base, and one-bit shifts and complement.
package programmer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDigit is returned for digits the active base cannot represent
	ErrInvalidDigit = errors.New("invalid digit for base")
	// ErrLengthCap is returned when the rendered register is already full
	ErrLengthCap = errors.New("register length cap reached")
	// ErrUnknownBase is returned by ParseBase
	ErrUnknownBase = errors.New("unknown base")
)

// Base is a numeric base; its value is the radix.
type Base int

const (
	Bin Base = 2
	Oct Base = 8
	Dec Base = 10
	Hex Base = 16
)

// displayOrder is the order of the display rows and of base cycling.
var displayOrder = []Base{Hex, Dec, Oct, Bin}

// Bases returns every base in display order
func Bases() []Base {
	out := make([]Base, len(displayOrder))
	copy(out, displayOrder)
	return out
}

// Radix returns the base as an int for strconv
func (b Base) Radix() int {
	return int(b)
}

func (b Base) String() string {
	switch b {
	case Bin:
		return "BIN"
	case Oct:
		return "OCT"
	case Dec:
		return "DEC"
	case Hex:
		return "HEX"
	default:
		return fmt.Sprintf("Base(%d)", int(b))
	}
}

// Valid reports whether b is one of the four supported bases
func (b Base) Valid() bool {
	switch b {
	case Bin, Oct, Dec, Hex:
		return true
	}
	return false
}

// Next returns the base after b in display order, wrapping around.
func (b Base) Next() Base {
	for i, base := range displayOrder {
		if base == b {
			return displayOrder[(i+1)%len(displayOrder)]
		}
	}
	return Dec
}

// ParseBase accepts a base name ("hex", "HEX", "hexadecimal") or its radix
// ("16").
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bin", "binary", "2":
		return Bin, nil
	case "oct", "octal", "8":
		return Oct, nil
	case "dec", "decimal", "10":
		return Dec, nil
	case "hex", "hexadecimal", "16":
		return Hex, nil
	}
	return Dec, fmt.Errorf("%w: %q", ErrUnknownBase, s)
}

// Accepts reports whether r is a digit of base b. Hex letters are accepted
// in either case.
func (b Base) Accepts(r rune) bool {
	v := digitValue(r)
	return v >= 0 && v < b.Radix()
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	}
	return -1
}
