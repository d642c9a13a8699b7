package reconcile

import (
	"fmt"
	"strings"

	"data-integrity/core/frame"
	"data-integrity/core/utils"

	"go.uber.org/zap"
)

// IDColumn is the name of the derived identifier column carried by every
// result frame.
const IDColumn = "ID"

// keySeparator joins the parts of a composite identifier.
const keySeparator = "\x1f"

// KeyTypeError reports an idColumns argument that is neither a column name
// nor a list of column names.
type KeyTypeError struct {
	// Value is the rejected argument.
	Value any
}

func (e *KeyTypeError) Error() string {
	return fmt.Sprintf("reconcile: id columns must be a string or []string, got %T", e.Value)
}

// Options controls dataset cleanup before joining.
type Options struct {
	// DropDuplicates removes exact duplicate rows from each dataset.
	DropDuplicates bool
	// DropMissing removes rows containing missing values from each dataset.
	DropMissing bool
}

// DefaultOptions returns the standard cleanup behavior: duplicates and
// rows with missing values are dropped from both datasets before joining.
func DefaultOptions() Options {
	return Options{DropDuplicates: true, DropMissing: true}
}

// Summary holds the aggregate counts reported after a reconciliation.
type Summary struct {
	// Matches is the number of matched joined rows.
	Matches int
	// SourceMismatches is the number of source-only rows.
	SourceMismatches int
	// OutputMismatches is the number of output-only rows.
	OutputMismatches int
}

// Result holds the three disjoint row sets of a reconciliation.
type Result struct {
	// Matched contains the joined rows present in both datasets.
	Matched *frame.Frame
	// SourceOnly contains source rows whose identifier never matched.
	SourceOnly *frame.Frame
	// OutputOnly contains output rows whose identifier never matched.
	OutputOnly *frame.Frame
	// Summary provides aggregate counts.
	Summary Summary
}

// Reconcile matches rows of source against output by a derived identifier.
//
// idColumns is a single column name (values used verbatim) or a list of
// names (values concatenated in list order). Both datasets may be any shape
// frame.Coerce accepts. The count summary is logged through l; pass nil to
// silence it.
func Reconcile(l *zap.Logger, source, output any, idColumns any, opts Options) (*Result, error) {
	if l == nil {
		l = zap.NewNop()
	}

	src, err := frame.Coerce(source)
	if err != nil {
		return nil, fmt.Errorf("reconcile: source: %w", err)
	}
	out, err := frame.Coerce(output)
	if err != nil {
		return nil, fmt.Errorf("reconcile: output: %w", err)
	}

	keyCols, err := keyColumns(idColumns)
	if err != nil {
		return nil, err
	}

	src, err = withIdentifier(src, keyCols)
	if err != nil {
		return nil, fmt.Errorf("reconcile: source: %w", err)
	}
	out, err = withIdentifier(out, keyCols)
	if err != nil {
		return nil, fmt.Errorf("reconcile: output: %w", err)
	}

	if opts.DropMissing {
		src = src.DropMissing()
		out = out.DropMissing()
	}
	if opts.DropDuplicates {
		src = src.DropDuplicates()
		out = out.DropDuplicates()
	}

	matched, err := leftJoin(src, out)
	if err != nil {
		return nil, err
	}
	matched = matched.DropMissing().DropDuplicates()

	matchedIDs := idSet(matched)
	sourceOnly := src.Filter(func(row int) bool { return !inSet(matchedIDs, src, row) })
	outputOnly := out.Filter(func(row int) bool { return !inSet(matchedIDs, out, row) })

	res := &Result{
		Matched:    matched,
		SourceOnly: sourceOnly,
		OutputOnly: outputOnly,
		Summary: Summary{
			Matches:          matched.NumRows(),
			SourceMismatches: sourceOnly.NumRows(),
			OutputMismatches: outputOnly.NumRows(),
		},
	}

	l.Info("reconciliation summary",
		zap.Int("matches", res.Summary.Matches),
		zap.Int("source_mismatches", res.Summary.SourceMismatches),
		zap.Int("output_mismatches", res.Summary.OutputMismatches),
	)

	return res, nil
}

// keyColumns validates the idColumns argument shape.
func keyColumns(idColumns any) ([]string, error) {
	switch v := idColumns.(type) {
	case string:
		return []string{v}, nil
	case []string:
		if len(v) == 0 {
			return nil, fmt.Errorf("reconcile: id columns list is empty")
		}
		return v, nil
	default:
		return nil, &KeyTypeError{Value: idColumns}
	}
}

// withIdentifier replaces the key columns with a derived ID column. A
// single key column keeps its values verbatim; multiple key columns are
// stringified and joined with the unit separator.
func withIdentifier(f *frame.Frame, keyCols []string) (*frame.Frame, error) {
	for _, name := range keyCols {
		if !f.HasColumn(name) {
			return nil, fmt.Errorf("no column %q", name)
		}
	}

	ids := make([]any, f.NumRows())
	if len(keyCols) == 1 {
		vals, err := f.Values(keyCols[0])
		if err != nil {
			return nil, err
		}
		copy(ids, vals)
	} else {
		parts := make([][]any, len(keyCols))
		for i, name := range keyCols {
			vals, err := f.Values(name)
			if err != nil {
				return nil, err
			}
			parts[i] = vals
		}
		for row := range ids {
			ss := make([]string, len(parts))
			for i := range parts {
				ss[i] = utils.ToString(parts[i][row])
			}
			ids[row] = strings.Join(ss, keySeparator)
		}
	}

	rest := f.Drop(keyCols...)
	cols := []frame.Column{{Name: IDColumn, Values: ids}}
	for _, name := range rest.Columns() {
		vals, _ := rest.Values(name)
		cols = append(cols, frame.Column{Name: name, Values: vals})
	}
	return frame.New(cols...)
}

// leftJoin joins every source row with each output row sharing its
// identifier. Unmatched source rows keep nil output cells, which the
// caller's DropMissing pass removes from the matched set. Non-key columns
// occurring in both frames are suffixed _source and _output.
func leftJoin(src, out *frame.Frame) (*frame.Frame, error) {
	srcIDs, err := src.Values(IDColumn)
	if err != nil {
		return nil, err
	}
	outIDs, err := out.Values(IDColumn)
	if err != nil {
		return nil, err
	}

	// Index output rows by identifier.
	index := make(map[string][]int, len(outIDs))
	for i, id := range outIDs {
		key := idKey(id)
		index[key] = append(index[key], i)
	}

	srcCols := dropID(src.Columns())
	outCols := dropID(out.Columns())
	overlap := make(map[string]bool, len(srcCols))
	for _, name := range srcCols {
		for _, other := range outCols {
			if name == other {
				overlap[name] = true
			}
		}
	}

	names := []string{IDColumn}
	for _, name := range srcCols {
		if overlap[name] {
			name += "_source"
		}
		names = append(names, name)
	}
	for _, name := range outCols {
		if overlap[name] {
			name += "_output"
		}
		names = append(names, name)
	}

	values := make([][]any, len(names))
	appendRow := func(srcRow, outRow int) {
		j := 0
		values[j] = append(values[j], srcIDs[srcRow])
		for _, name := range srcCols {
			j++
			vals, _ := src.Values(name)
			values[j] = append(values[j], vals[srcRow])
		}
		for _, name := range outCols {
			j++
			var v any
			if outRow >= 0 {
				vals, _ := out.Values(name)
				v = vals[outRow]
			}
			values[j] = append(values[j], v)
		}
	}

	for i := range srcIDs {
		matches := index[idKey(srcIDs[i])]
		if len(matches) == 0 {
			appendRow(i, -1)
			continue
		}
		for _, outRow := range matches {
			appendRow(i, outRow)
		}
	}

	cols := make([]frame.Column, len(names))
	for i, name := range names {
		cols[i] = frame.Column{Name: name, Values: values[i]}
	}
	return frame.New(cols...)
}

// idKey fingerprints an identifier cell, keeping int(1) and "1" distinct.
func idKey(v any) string {
	return fmt.Sprintf("%T=%v", v, v)
}

func idSet(f *frame.Frame) map[string]struct{} {
	set := make(map[string]struct{}, f.NumRows())
	ids, err := f.Values(IDColumn)
	if err != nil {
		return set
	}
	for _, id := range ids {
		set[idKey(id)] = struct{}{}
	}
	return set
}

func inSet(set map[string]struct{}, f *frame.Frame, row int) bool {
	ids, err := f.Values(IDColumn)
	if err != nil {
		return false
	}
	_, ok := set[idKey(ids[row])]
	return ok
}

func dropID(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == IDColumn {
			continue
		}
		out = append(out, name)
	}
	return out
}
