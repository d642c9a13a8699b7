// Package frame provides the in-memory tabular dataset used by every
// engine in the toolkit.
//
// A Frame is an ordered collection of named columns, each column an untyped
// value sequence, with rows aligned by position. Cells are deliberately kept
// as `any`: the profiling engine reports the runtime value-type distribution
// of each column, which a typed column representation would erase.
//
// # Input coercion
//
// Coerce normalizes the three accepted input shapes into a Frame:
//   - *Frame: returned unchanged
//   - Column: wrapped into a single-column Frame
//   - map[string][]any: converted into a Frame whose row count equals the
//     longest value sequence (shorter columns are padded with nil)
//
// Any other input is rejected with an *UnsupportedInputError.
//
// # Missing values
//
// A cell is missing when it is nil. A fixed set of string sentinels
// conventionally used to denote missing data ("NaN", "N/A", "None", ...)
// is recognized separately by IsSentinel; sentinel cells count as values
// for uniqueness purposes but are reported by sentinel-aware operations.
//
// # Usage
//
//	f, err := frame.FromMap(map[string][]any{
//	    "id": {1, 2, 3},
//	    "v":  {10, 20, 30},
//	})
//	clean := f.DropMissing().DropDuplicates()
package frame
