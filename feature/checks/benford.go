package checks

import (
	"fmt"
	"strings"

	"data-integrity/core/frame"
	"data-integrity/core/utils"

	"gonum.org/v1/gonum/stat/distuv"
)

// Classification strings returned by Benford.
const (
	DistributionsEqual    = "distributions are equal"
	DistributionsNotEqual = "distributions are not equal"
)

// DefaultConfidence is the confidence level Benford uses when none is
// given.
const DefaultConfidence = 0.95

// benfordDistribution is the theoretical first-digit frequency for digits
// 1 through 9.
var benfordDistribution = [9]float64{0.301, 0.176, 0.125, 0.097, 0.079, 0.067, 0.058, 0.051, 0.046}

// Benford tests the first significant digits of col against Benford's law.
//
// The first digit of each value is extracted by string manipulation (sign,
// zeros and the decimal point stripped); values without a significant digit
// are skipped. The digit counts are compared to the Benford distribution
// with a Pearson chi-squared test at 8 degrees of freedom, rejecting
// equality when the statistic exceeds the upper-tail critical value at the
// given confidence level. Pass confidence <= 0 for the default of 0.95.
//
// Returns DistributionsEqual or DistributionsNotEqual.
func Benford(data any, col string, confidence float64) (string, error) {
	f, err := frame.Coerce(data)
	if err != nil {
		return "", err
	}
	values, err := f.Values(col)
	if err != nil {
		return "", err
	}
	if confidence <= 0 {
		confidence = DefaultConfidence
	}
	if confidence >= 1 {
		return "", fmt.Errorf("checks: confidence must be below 1, got %v", confidence)
	}

	var counts [9]int
	total := 0
	for _, v := range values {
		d, ok := firstSignificantDigit(v)
		if !ok {
			continue
		}
		counts[d-1]++
		total++
	}
	if total == 0 {
		return "", fmt.Errorf("checks: column %q has no significant digits", col)
	}

	var chiSquare float64
	for i, p := range benfordDistribution {
		expected := float64(total) * p
		diff := float64(counts[i]) - expected
		chiSquare += diff * diff / expected
	}

	critical := distuv.ChiSquared{K: 8}.Quantile(confidence)
	if chiSquare < critical {
		return DistributionsEqual, nil
	}
	return DistributionsNotEqual, nil
}

// firstSignificantDigit extracts the leading non-zero digit of a value's
// string form. The sign, zeros and the decimal point are stripped first, so
// -0.052 yields 5.
func firstSignificantDigit(v any) (int, bool) {
	if frame.IsMissing(v) {
		return 0, false
	}
	s := utils.ToString(v)
	s = strings.TrimLeft(s, "+-")
	s = strings.Map(func(r rune) rune {
		if r == '0' || r == '.' {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return 0, false
	}
	d := s[0]
	if d < '1' || d > '9' {
		return 0, false
	}
	return int(d - '0'), true
}
