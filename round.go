package canvas

import "math"

// Round rounds a value to the nearest integer using the half-up rule
// floor(v + 0.5). Unlike math.Round, the rule is asymmetric around zero:
// Round(-0.5) is 0, not -1, because the value is floored after adding 0.5.
// Draw operations use it to snap blit positions to whole pixels.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// RoundFloat rounds a value to the given number of decimal digits using the
// same half-up rule as Round. The precision defaults to 2 when omitted.
//
// The result reflects binary floating point, not decimal arithmetic:
// RoundFloat(1.005, 2) is 1.0 because 1.005*100 is slightly below 100.5.
func RoundFloat(v float64, precision ...int) float64 {
	p := 2
	if len(precision) > 0 {
		p = precision[0]
	}
	coef := math.Pow(10, float64(p))
	return float64(Round(v*coef)) / coef
}
