// Package reconcile implements row-level matching between two tabular
// datasets.
//
// Both datasets are keyed by a derived row identifier built from one or
// more designated key columns. A left join of source onto output splits the
// rows into three disjoint sets:
//
//   - Matched: identifier present in both datasets, join introduced no
//     missing values
//   - SourceOnly: source rows whose identifier never matched
//   - OutputOnly: output rows whose identifier never matched
//
// Identifiers are not required to be unique; duplicate rows are removed
// before joining unless the caller opts out.
//
// # Composite identifiers
//
// When several key columns are given, their string forms are joined with an
// ASCII unit separator. Bare concatenation would make ("1","23") and
// ("12","3") collide on "123".
//
// # Usage
//
//	res, err := reconcile.Reconcile(log, source, output, "id", reconcile.DefaultOptions())
//	fmt.Println(res.Summary.Matches)
package reconcile
