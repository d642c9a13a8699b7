package profile

import (
	"math"
	"time"

	"data-integrity/core/utils"

	"github.com/araddon/dateparse"
	"gonum.org/v1/gonum/stat"
)

// intEpsilon bounds the summed float/int coercion difference below which a
// column counts as integer-like.
const intEpsilon = 1e-4

// datetimeSpreadSeconds is the minimum standard deviation of parsed
// timestamps for a column to count as datetime-like. It filters out columns
// holding one repeated date.
const datetimeSpreadSeconds = 60.0

// StringLike reports whether a column of sampled values is string-like:
// every value is an alphanumeric string, or more than 1% of them are. Any
// non-string value fails the check outright.
func StringLike(values []any) bool {
	if len(values) == 0 {
		return false
	}
	alnum := 0
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return false
		}
		if isAlnum(s) {
			alnum++
		}
	}
	if alnum == len(values) {
		return true
	}
	return alnum > 0 && float64(alnum)/float64(len(values)) > 0.01
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isLetterOrDigit(r) {
			return false
		}
	}
	return true
}

func isLetterOrDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// BoolLike reports whether a column holds exactly two distinct values that
// both coerce to integer.
func BoolLike(values []any) bool {
	distinct := make(map[any]struct{}, 2)
	for _, v := range values {
		distinct[fingerprint(v)] = struct{}{}
		if len(distinct) > 2 {
			return false
		}
	}
	if len(distinct) != 2 {
		return false
	}
	for _, v := range values {
		if _, err := utils.Int(v); err != nil {
			return false
		}
	}
	return true
}

// IntLike reports whether a column is integer-like: every value coerces to
// float and the summed absolute difference between the float and integer
// coercions stays below epsilon, or direct integer coercion succeeds where
// float coercion fails.
func IntLike(values []any) bool {
	if len(values) == 0 {
		return false
	}
	floats, ok := coerceFloats(values)
	if !ok {
		_, ok := coerceInts(values)
		return ok
	}
	ints, ok := coerceInts(values)
	if !ok {
		return false
	}
	return sumAbsDiff(floats, ints) < intEpsilon
}

// FloatLike reports whether a column has genuine fractional content: both
// coercions succeed and the summed absolute difference exceeds epsilon.
func FloatLike(values []any) bool {
	if len(values) == 0 {
		return false
	}
	floats, ok := coerceFloats(values)
	if !ok {
		return false
	}
	ints, ok := coerceInts(values)
	if !ok {
		return false
	}
	return sumAbsDiff(floats, ints) > intEpsilon
}

// DatetimeLike reports whether every value parses as a timestamp and the
// standard deviation of the parsed epoch seconds exceeds one minute.
func DatetimeLike(values []any) bool {
	if len(values) == 0 {
		return false
	}
	secs := make([]float64, len(values))
	for i, v := range values {
		t, err := parseTimestamp(v)
		if err != nil {
			return false
		}
		secs[i] = float64(t.UnixNano()) / float64(time.Second)
	}
	return stdDev(secs) > datetimeSpreadSeconds
}

func parseTimestamp(v any) (time.Time, error) {
	if t, ok := v.(time.Time); ok {
		return t, nil
	}
	return dateparse.ParseAny(utils.ToString(v))
}

func coerceFloats(values []any) ([]float64, bool) {
	out := make([]float64, len(values))
	for i, v := range values {
		f, err := utils.Float(v)
		if err != nil {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

func coerceInts(values []any) ([]int64, bool) {
	out := make([]int64, len(values))
	for i, v := range values {
		n, err := utils.Int(v)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

func sumAbsDiff(floats []float64, ints []int64) float64 {
	var sum float64
	for i := range floats {
		sum += math.Abs(floats[i] - float64(ints[i]))
	}
	return sum
}

func stdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.PopStdDev(xs, nil)
}

// fingerprint makes any value usable as a map key for distinct-counting,
// keeping int(1) and "1" distinct.
type typedValue struct {
	typeName string
	repr     string
}

func fingerprint(v any) any {
	return typedValue{typeName: typeName(v), repr: utils.ToString(v)}
}
