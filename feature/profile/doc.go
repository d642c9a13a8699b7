// Package profile computes per-column statistics for a tabular dataset.
//
// The profiler answers three questions about every column: what runtime
// types its values actually have, what types the values could be converted
// to, and how many values are unique, duplicated or missing. Convertibility
// is decided by a set of ordered, fail-closed heuristics rather than a
// strict schema check, so mixed and dirty columns still produce a useful
// answer.
//
// # Operations
//
//   - InferTypes: runtime type composition plus candidate conversion types.
//   - UniqueCounts, DuplicateCounts, MissingCounts: per-column cardinality,
//     with missing-value sentinels broken down separately.
//   - AutoProfile: all of the above joined into one table, one row per
//     column; AutoProfileToFile writes it to a spreadsheet instead.
//   - ToCategorical, CorrelationPairs: categorical encoding and pairwise
//     Pearson correlations for quick exploratory analysis.
//
// A failing heuristic or a column the profiler cannot read is logged as a
// warning and reported with empty candidate types; a profiling call never
// aborts because of a single bad column.
package profile
