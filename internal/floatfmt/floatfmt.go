// Package floatfmt renders float64 values the way the rest of this module
// displays them: shortest round-trip digits, fixed notation for moderate
// exponents and scientific notation otherwise.
package floatfmt

import (
	"math"
	"strconv"
	"strings"
)

// Exponents outside [minFixedExp, maxFixedExp) are written in scientific
// notation.
const (
	minFixedExp = -4
	maxFixedExp = 16
)

// Repr returns the shortest string that parses back to f.
// Finite values with a decimal exponent in [-4, 16) are written in fixed
// notation with at least one digit after the point ("0.5", "3.0",
// "3000000.0"); all others use the form "1e+100" or "1.5e-05".
// Non-finite values are written as "inf", "-inf" and "nan".
func Repr(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	i := strings.LastIndexByte(sci, 'e')
	exp, err := strconv.Atoi(sci[i+1:])
	if err != nil {
		// strconv always writes a valid exponent
		panic(err)
	}
	if exp < minFixedExp || exp >= maxFixedExp {
		return sci
	}
	fixed := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(fixed, '.') {
		fixed += ".0"
	}
	return fixed
}

// Round returns f rounded to the given number of decimal places.
// The result is the float64 nearest to the correctly rounded decimal, with
// ties broken to even on the exact binary value of f. Non-finite values are
// returned unchanged.
func Round(f float64, places int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	s := strconv.FormatFloat(f, 'f', places, 64)
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// only possible if rounding carried past MaxFloat64
		return f
	}
	return r
}
