package reconcile

import (
	"testing"

	"data-integrity/core/frame"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReconcileByID(t *testing.T) {
	source := map[string][]any{"id": {1, 2, 3}, "v": {10, 20, 30}}
	output := map[string][]any{"id": {2, 3, 4}, "v": {20, 30, 40}}

	res, err := Reconcile(zap.NewNop(), source, output, "id", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Summary.Matches)
	assert.Equal(t, 1, res.Summary.SourceMismatches)
	assert.Equal(t, 1, res.Summary.OutputMismatches)

	ids, err := res.Matched.Values(IDColumn)
	require.NoError(t, err)
	assert.ElementsMatch(t, []any{2, 3}, ids)

	srcIDs, err := res.SourceOnly.Values(IDColumn)
	require.NoError(t, err)
	assert.Equal(t, []any{1}, srcIDs)

	outIDs, err := res.OutputOnly.Values(IDColumn)
	require.NoError(t, err)
	assert.Equal(t, []any{4}, outIDs)
}

func TestReconcileCompositeIdentifier(t *testing.T) {
	t.Run("joined parts match", func(t *testing.T) {
		source := map[string][]any{"a": {"x", "y"}, "b": {1, 2}, "v": {10, 20}}
		output := map[string][]any{"a": {"x", "z"}, "b": {1, 9}, "v": {10, 90}}

		res, err := Reconcile(nil, source, output, []string{"a", "b"}, DefaultOptions())
		require.NoError(t, err)

		assert.Equal(t, 1, res.Summary.Matches)
		assert.Equal(t, 1, res.Summary.SourceMismatches)
		assert.Equal(t, 1, res.Summary.OutputMismatches)
	})

	t.Run("no concatenation collisions", func(t *testing.T) {
		// ("1","23") and ("12","3") concatenate to the same bare string.
		source := map[string][]any{"a": {"1"}, "b": {"23"}, "v": {1}}
		output := map[string][]any{"a": {"12"}, "b": {"3"}, "v": {1}}

		res, err := Reconcile(nil, source, output, []string{"a", "b"}, DefaultOptions())
		require.NoError(t, err)

		assert.Equal(t, 0, res.Summary.Matches)
		assert.Equal(t, 1, res.Summary.SourceMismatches)
		assert.Equal(t, 1, res.Summary.OutputMismatches)
	})
}

func TestReconcilePartition(t *testing.T) {
	// matched and source-only identifiers must partition the deduplicated
	// source identifier set.
	source := map[string][]any{"id": {1, 2, 2, 3, 5}, "v": {10, 20, 20, 30, 50}}
	output := map[string][]any{"id": {2, 3, 4}, "v": {20, 30, 40}}

	res, err := Reconcile(nil, source, output, "id", DefaultOptions())
	require.NoError(t, err)

	matched := idSet(res.Matched)
	srcOnly := idSet(res.SourceOnly)

	for key := range matched {
		_, both := srcOnly[key]
		assert.False(t, both, "identifier %s in matched and source-only", key)
	}
	assert.Equal(t, 4, len(matched)+len(srcOnly)) // deduplicated source has 4 ids
}

func TestReconcileCleanupOptions(t *testing.T) {
	t.Run("drops rows with missing values", func(t *testing.T) {
		source := map[string][]any{"id": {1, 2}, "v": {nil, 20}}
		output := map[string][]any{"id": {1, 2}, "v": {10, 20}}

		res, err := Reconcile(nil, source, output, "id", DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, 1, res.Summary.Matches)
		assert.Equal(t, 0, res.Summary.SourceMismatches)
		assert.Equal(t, 1, res.Summary.OutputMismatches)
	})

	t.Run("keeps duplicates on opt-out", func(t *testing.T) {
		source := map[string][]any{"id": {1, 1}, "v": {10, 10}}
		output := map[string][]any{"id": {1}, "v": {10}}

		res, err := Reconcile(nil, source, output, "id", Options{DropDuplicates: false, DropMissing: true})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Summary.Matches) // join result itself deduplicates
	})
}

func TestReconcileDifferingValueColumns(t *testing.T) {
	source := map[string][]any{"id": {1}, "v": {10}, "src_note": {"a"}}
	output := map[string][]any{"id": {1}, "v": {11}, "out_note": {"b"}}

	res, err := Reconcile(nil, source, output, "id", DefaultOptions())
	require.NoError(t, err)

	// Map-built frames order columns lexically; shared value columns are
	// suffixed by side.
	assert.Equal(t, []string{"ID", "src_note", "v_source", "out_note", "v_output"}, res.Matched.Columns())
	assert.Equal(t, 1, res.Summary.Matches)
}

func TestReconcileKeyTypeError(t *testing.T) {
	source := map[string][]any{"id": {1}}
	output := map[string][]any{"id": {1}}

	for _, bad := range []any{42, []int{1}, nil, map[string]string{}} {
		_, err := Reconcile(nil, source, output, bad, DefaultOptions())
		var keyErr *KeyTypeError
		assert.ErrorAs(t, err, &keyErr, "idColumns %v", bad)
	}

	_, err := Reconcile(nil, source, output, []string{}, DefaultOptions())
	assert.Error(t, err)

	_, err = Reconcile(nil, source, output, "unknown", DefaultOptions())
	assert.Error(t, err)
}

func TestReconcileRejectsBadInputShape(t *testing.T) {
	_, err := Reconcile(nil, 42, map[string][]any{"id": {1}}, "id", DefaultOptions())
	var typeErr *frame.UnsupportedInputError
	assert.ErrorAs(t, err, &typeErr)
}
