// Package utils hosts common utilities used throughout the code
package utils

import (
	"math"
	"strconv"
	"strings"
)

// Bounds outside of which FormatDecimal switches to scientific notation.
const (
	sciLowerBound = 1e-3
	sciUpperBound = 1e7
)

// FormatDecimal renders a float64 with the shortest digits that round-trip,
// always keeping at least one fractional digit, e.g. 8 -> "8.0".
// Magnitudes below 1e-3 or from 1e7 upwards use the "1.5E-4" form.
func FormatDecimal(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= sciLowerBound && abs < sciUpperBound) {
		return withFraction(strconv.FormatFloat(v, 'f', -1, 64))
	}

	// strconv gives "1.5E-04", we want "1.5E-4"
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'E', -1, 64), "E")
	n, _ := strconv.Atoi(exp)

	return withFraction(mantissa) + "E" + strconv.Itoa(n)
}

func withFraction(s string) string {
	if strings.Contains(s, ".") {
		return s
	}

	return s + ".0"
}
