package checks

import (
	"testing"
	"time"

	"data-integrity/core/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuplicates(t *testing.T) {
	data := map[string][]any{
		"id": {1, 2, 1, 3},
		"v":  {"a", "b", "a", "a"},
	}

	t.Run("full row identity", func(t *testing.T) {
		rows, err := Duplicates(data)
		require.NoError(t, err)
		require.Equal(t, 1, rows.NumRows())
		ids, _ := rows.Values("id")
		assert.Equal(t, []any{1}, ids)
	})

	t.Run("restricted to a subset", func(t *testing.T) {
		rows, err := Duplicates(data, "v")
		require.NoError(t, err)
		assert.Equal(t, 2, rows.NumRows())
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := Duplicates(data, "nope")
		assert.Error(t, err)
	})
}

func TestMissingIdentifier(t *testing.T) {
	data := map[string][]any{
		"id1": {1, nil, nil},
		"id2": {nil, 2, nil},
		"v":   {"a", "b", "c"},
	}

	rows, err := MissingIdentifier(data, []string{"id1", "id2"})
	require.NoError(t, err)
	require.Equal(t, 1, rows.NumRows())
	v, _ := rows.Values("v")
	assert.Equal(t, []any{"c"}, v)

	_, err = MissingIdentifier(data, nil)
	assert.Error(t, err)
}

func TestMissingValues(t *testing.T) {
	data := map[string][]any{
		"v": {"a", nil, "N/A", "b"},
	}

	rows, err := MissingValues(data, "v")
	require.NoError(t, err)
	assert.Equal(t, 2, rows.NumRows())
}

func TestFutureDates(t *testing.T) {
	data := map[string][]any{
		"created": {"2024-01-01", "2030-01-01", "2023-06-15"},
		"v":       {1, 2, 3},
	}

	t.Run("string reference", func(t *testing.T) {
		rows, err := FutureDates(data, []string{"created"}, "2025-01-01")
		require.NoError(t, err)
		require.Equal(t, 1, rows.NumRows())
		v, _ := rows.Values("v")
		assert.Equal(t, []any{2}, v)
	})

	t.Run("time reference", func(t *testing.T) {
		ref := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
		rows, err := FutureDates(data, []string{"created"}, ref)
		require.NoError(t, err)
		assert.Equal(t, 3, rows.NumRows())
	})

	t.Run("bad reference type", func(t *testing.T) {
		_, err := FutureDates(data, []string{"created"}, 42)
		assert.Error(t, err)
	})

	t.Run("unparseable cells are skipped", func(t *testing.T) {
		dirty := map[string][]any{"d": {"not a date", "2030-01-01"}}
		rows, err := FutureDates(dirty, []string{"d"}, "2025-01-01")
		require.NoError(t, err)
		assert.Equal(t, 1, rows.NumRows())
	})
}

func TestVolumeAnomaly(t *testing.T) {
	data := map[string][]any{
		"amount": {1.0, 1.0, 1.0, -97.0},
	}

	rows, err := VolumeAnomaly(data, "amount", 50)
	require.NoError(t, err)
	require.Equal(t, 1, rows.NumRows())
	amounts, _ := rows.Values("amount")
	assert.Equal(t, []any{-97.0}, amounts)

	t.Run("missing cells drop out of the total", func(t *testing.T) {
		dirty := map[string][]any{
			"amount": {1.0, 1.0, nil, -97.0},
		}
		rows, err := VolumeAnomaly(dirty, "amount", 50)
		require.NoError(t, err)
		require.Equal(t, 1, rows.NumRows())
		amounts, _ := rows.Values("amount")
		assert.Equal(t, []any{-97.0}, amounts)
	})

	t.Run("non-numeric cell still errors", func(t *testing.T) {
		bad := map[string][]any{"amount": {1.0, "abc"}}
		_, err := VolumeAnomaly(bad, "amount", 50)
		assert.Error(t, err)
	})
}

func TestNumericAnomaly(t *testing.T) {
	data := map[string][]any{
		"v": {1, 2, 3, 100},
	}

	rows, err := NumericAnomaly(data, "v", 1.0, NumericOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, rows.NumRows())
	v, _ := rows.Values("v")
	assert.Equal(t, []any{100}, v)

	t.Run("missing cells are excluded and never flagged", func(t *testing.T) {
		dirty := map[string][]any{
			"v": {1, 2, 3, nil, 100},
		}
		rows, err := NumericAnomaly(dirty, "v", 1.0, NumericOptions{})
		require.NoError(t, err)
		require.Equal(t, 1, rows.NumRows())
		v, _ := rows.Values("v")
		assert.Equal(t, []any{100}, v)
	})

	t.Run("renderer side effect does not change the result", func(t *testing.T) {
		rows, err := NumericAnomaly(data, "v", 1.0, NumericOptions{Renderer: render.Nop})
		require.NoError(t, err)
		assert.Equal(t, 1, rows.NumRows())
	})

	t.Run("non-numeric column", func(t *testing.T) {
		bad := map[string][]any{"v": {"a", "b"}}
		_, err := NumericAnomaly(bad, "v", 1.0, NumericOptions{})
		assert.Error(t, err)
	})
}

func TestTypeDistribution(t *testing.T) {
	data := map[string][]any{
		"v": {"a", "b", 1, "c"},
	}

	dist, err := TypeDistribution(data, "v")
	require.NoError(t, err)

	types, _ := dist.Values("data_type")
	counts, _ := dist.Values("count")
	assert.Equal(t, []any{"string", "int"}, types)
	assert.Equal(t, []any{3, 1}, counts)
}
