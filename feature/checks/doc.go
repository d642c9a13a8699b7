// Package checks provides stateless anomaly checks over tabular datasets.
//
// Each check is an independent predicate over one dataset; most return the
// offending rows as a new frame, the Benford check returns a classification
// string. Checks never mutate their input and carry no state between calls.
//
//   - Duplicates: rows repeated across all columns or a subset.
//   - MissingIdentifier: rows whose identifier columns are all missing.
//   - MissingValues: rows where a column is nil or a missing-data sentinel.
//   - FutureDates: rows whose date columns exceed a reference date.
//   - VolumeAnomaly: rows holding an outsized share of a column's total.
//   - NumericAnomaly: rows whose z-score exceeds a threshold, with optional
//     plot rendering through core/render.
//   - TypeDistribution: value-type counts of a column as a frame.
//   - Benford: first-digit distribution test against Benford's law.
package checks
