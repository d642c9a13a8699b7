package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// benfordSample builds a dataset of n values whose first-digit counts
// follow the Benford distribution exactly.
func benfordSample(n int) map[string][]any {
	var values []any
	for digit, p := range benfordDistribution {
		count := int(p * float64(n))
		for i := 0; i < count; i++ {
			values = append(values, (digit+1)*10)
		}
	}
	return map[string][]any{"amount": values}
}

func TestBenford(t *testing.T) {
	t.Run("benford-distributed data", func(t *testing.T) {
		result, err := Benford(benfordSample(1000), "amount", 0)
		require.NoError(t, err)
		assert.Equal(t, DistributionsEqual, result)
	})

	t.Run("uniform digits", func(t *testing.T) {
		var values []any
		for digit := 1; digit <= 9; digit++ {
			for i := 0; i < 100; i++ {
				values = append(values, digit)
			}
		}
		result, err := Benford(map[string][]any{"amount": values}, "amount", 0)
		require.NoError(t, err)
		assert.Equal(t, DistributionsNotEqual, result)
	})

	t.Run("no significant digits", func(t *testing.T) {
		_, err := Benford(map[string][]any{"amount": {0, 0.0, "0.00", nil}}, "amount", 0)
		assert.Error(t, err)
	})

	t.Run("invalid confidence", func(t *testing.T) {
		_, err := Benford(benfordSample(100), "amount", 1.5)
		assert.Error(t, err)
	})
}

func TestFirstSignificantDigit(t *testing.T) {
	cases := []struct {
		in   any
		want int
		ok   bool
	}{
		{123, 1, true},
		{-0.052, 5, true},
		{"0.301", 3, true},
		{"700", 7, true},
		{0, 0, false},
		{"0.00", 0, false},
		{nil, 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, ok := firstSignificantDigit(tc.in)
		assert.Equal(t, tc.ok, ok, "value %v", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, "value %v", tc.in)
		}
	}
}
