package scientific

import (
	"strconv"
	"strings"

	"github.com/Starties/calculators/internal/consts"
)

// FormatOptions controls how numeric results are rendered.
type FormatOptions struct {
	Precision      int   // significant digits kept
	LowerExp       int   // magnitudes below 10^LowerExp use exponent notation
	UpperExp       int   // magnitudes at or above 10^UpperExp use exponent notation
	MaxDenominator int64 // bound for the fraction toggle
}

// DefaultFormatOptions returns the calculator's stock display settings
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		Precision:      consts.DefaultPrecision,
		LowerExp:       consts.DefaultLowerExp,
		UpperExp:       consts.DefaultUpperExp,
		MaxDenominator: consts.DefaultMaxDenominator,
	}
}

// Format rounds v to the configured number of significant digits, which
// also absorbs binary floating-point noise (0.1+0.2 renders as "0.3"), and
// switches to exponent notation outside the magnitude window.
func (o FormatOptions) Format(v float64) string {
	prec := o.Precision
	if prec < 1 {
		prec = consts.DefaultPrecision
	}
	if prec > consts.MaxPrecision {
		prec = consts.MaxPrecision
	}

	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'e', prec-1, 64), 64)
	if err != nil {
		rounded = v
	}
	if rounded == 0 {
		return "0"
	}

	sci := strconv.FormatFloat(rounded, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < o.LowerExp || exp >= o.UpperExp {
		return trimExponent(sci)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// trimExponent drops the zero padding Go puts in exponents ("e-07" -> "e-7").
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+2] + digits
}
