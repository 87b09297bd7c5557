package scientific

import (
	"math"
	"strconv"

	"github.com/Starties/calculators/internal/consts"
)

// FractionSeparator separates numerator and denominator in a result
const FractionSeparator = "/"

// maxExactFloat is the largest magnitude at which every integer is exact
// in a float64; convergents beyond it cannot be trusted.
const maxExactFloat = 1 << 53

// Approximate finds the simplest fraction num/den (den <= maxDen) within
// consts.FractionTolerance of x, walking the continued fraction expansion
// of x. The result is always in lowest terms with a positive denominator.
func Approximate(x float64, maxDen int64) (num, den int64, ok bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) || maxDen < 1 {
		return 0, 0, false
	}
	if x == 0 {
		return 0, 1, true
	}

	sign := int64(1)
	if x < 0 {
		sign = -1
		x = -x
	}
	if x >= maxExactFloat {
		return 0, 0, false
	}

	// convergents h/k, seeded with h(-2)/k(-2) = 0/1 and h(-1)/k(-1) = 1/0
	h0, h1 := int64(0), int64(1)
	k0, k1 := int64(1), int64(0)
	f := x
	for i := 0; i < consts.MaxContinuedFractionTerms; i++ {
		a := math.Floor(f)
		if a*float64(h1)+float64(h0) >= maxExactFloat || a*float64(k1)+float64(k0) > float64(maxDen) {
			return 0, 0, false
		}
		ai := int64(a)
		h0, h1 = h1, ai*h1+h0
		k0, k1 = k1, ai*k1+k0

		if math.Abs(float64(h1)/float64(k1)-x) <= consts.FractionTolerance*x {
			return sign * h1, k1, true
		}

		rest := f - a
		if rest == 0 {
			return sign * h1, k1, true
		}
		f = 1 / rest
	}
	return 0, 0, false
}

// formatFraction renders an improper fraction, "5/2", "-1/3"
func formatFraction(num, den int64) string {
	return strconv.FormatInt(num, 10) + FractionSeparator + strconv.FormatInt(den, 10)
}
