package frame

import (
	"fmt"
	"sort"
	"strings"
)

// Column is a named, ordered sequence of untyped cells.
type Column struct {
	// Name is the column name.
	Name string
	// Values holds the cells in row order. A nil cell is a missing value.
	Values []any
}

// Frame is an ordered collection of named columns with rows aligned by
// position. Frames are value containers: operations return new Frames and
// never mutate their receiver.
type Frame struct {
	names []string
	cols  map[string][]any
	rows  int
}

// New builds a Frame from the given columns, preserving their order.
// Shorter columns are padded with nil so every column has the row count of
// the longest one. Duplicate column names are rejected.
func New(cols ...Column) (*Frame, error) {
	f := &Frame{
		names: make([]string, 0, len(cols)),
		cols:  make(map[string][]any, len(cols)),
	}
	for _, c := range cols {
		if _, ok := f.cols[c.Name]; ok {
			return nil, fmt.Errorf("frame: duplicate column %q", c.Name)
		}
		if len(c.Values) > f.rows {
			f.rows = len(c.Values)
		}
		f.names = append(f.names, c.Name)
		f.cols[c.Name] = append([]any(nil), c.Values...)
	}
	for name, vals := range f.cols {
		for len(vals) < f.rows {
			vals = append(vals, nil)
		}
		f.cols[name] = vals
	}
	return f, nil
}

// FromMap builds a Frame from a column-name to value-sequence mapping.
// Column order is sorted by name for deterministic output, and shorter
// sequences are padded with nil up to the longest one.
func FromMap(m map[string][]any) *Frame {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	cols := make([]Column, 0, len(names))
	for _, name := range names {
		cols = append(cols, Column{Name: name, Values: m[name]})
	}
	f, _ := New(cols...) // names are unique by construction
	return f
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int { return f.rows }

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.names) }

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.names...)
}

// HasColumn reports whether the named column exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// Values returns the cells of the named column in row order.
func (f *Frame) Values(name string) ([]any, error) {
	vals, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("frame: no column %q", name)
	}
	return vals, nil
}

// Row returns the cells of row i in column order.
func (f *Frame) Row(i int) []any {
	out := make([]any, len(f.names))
	for j, name := range f.names {
		out[j] = f.cols[name][i]
	}
	return out
}

// Select returns a new Frame containing only the named columns, in the
// given order.
func (f *Frame) Select(names ...string) (*Frame, error) {
	cols := make([]Column, 0, len(names))
	for _, name := range names {
		vals, err := f.Values(name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, Column{Name: name, Values: vals})
	}
	return New(cols...)
}

// Drop returns a new Frame without the named columns. Unknown names are
// ignored.
func (f *Frame) Drop(names ...string) *Frame {
	drop := make(map[string]struct{}, len(names))
	for _, name := range names {
		drop[name] = struct{}{}
	}
	keep := make([]Column, 0, len(f.names))
	for _, name := range f.names {
		if _, skip := drop[name]; skip {
			continue
		}
		keep = append(keep, Column{Name: name, Values: f.cols[name]})
	}
	out, _ := New(keep...)
	return out
}

// Filter returns a new Frame with the rows for which keep returns true.
func (f *Frame) Filter(keep func(row int) bool) *Frame {
	idx := make([]int, 0, f.rows)
	for i := 0; i < f.rows; i++ {
		if keep(i) {
			idx = append(idx, i)
		}
	}
	return f.take(idx)
}

// take builds a new Frame from the given row indices.
func (f *Frame) take(idx []int) *Frame {
	cols := make([]Column, 0, len(f.names))
	for _, name := range f.names {
		src := f.cols[name]
		vals := make([]any, 0, len(idx))
		for _, i := range idx {
			vals = append(vals, src[i])
		}
		cols = append(cols, Column{Name: name, Values: vals})
	}
	out, _ := New(cols...)
	if len(f.names) == 0 {
		out.rows = 0
	}
	return out
}

// DropMissing returns a new Frame without the rows that contain a missing
// (nil) cell in any column.
func (f *Frame) DropMissing() *Frame {
	return f.Filter(func(row int) bool {
		for _, name := range f.names {
			if IsMissing(f.cols[name][row]) {
				return false
			}
		}
		return true
	})
}

// DropDuplicates returns a new Frame keeping only the first occurrence of
// each distinct row. When cols are given, row identity is restricted to
// those columns.
func (f *Frame) DropDuplicates(cols ...string) *Frame {
	if len(cols) == 0 {
		cols = f.names
	}
	seen := make(map[string]struct{}, f.rows)
	return f.Filter(func(row int) bool {
		key := f.rowKey(row, cols)
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
		return true
	})
}

// DuplicatedRows returns the row indices that repeat an earlier row, with
// identity optionally restricted to cols. The first occurrence is not
// reported, matching the usual "keep first" convention.
func (f *Frame) DuplicatedRows(cols ...string) []int {
	if len(cols) == 0 {
		cols = f.names
	}
	seen := make(map[string]struct{}, f.rows)
	var dup []int
	for i := 0; i < f.rows; i++ {
		key := f.rowKey(i, cols)
		if _, ok := seen[key]; ok {
			dup = append(dup, i)
			continue
		}
		seen[key] = struct{}{}
	}
	return dup
}

// Concat appends the rows of other to f. Both Frames must have the same
// column set; other's columns are realigned to f's order.
func (f *Frame) Concat(other *Frame) (*Frame, error) {
	if len(f.names) != len(other.names) {
		return nil, fmt.Errorf("frame: concat column mismatch: %d vs %d", len(f.names), len(other.names))
	}
	cols := make([]Column, 0, len(f.names))
	for _, name := range f.names {
		ov, err := other.Values(name)
		if err != nil {
			return nil, fmt.Errorf("frame: concat: %w", err)
		}
		vals := append(append([]any(nil), f.cols[name]...), ov...)
		cols = append(cols, Column{Name: name, Values: vals})
	}
	return New(cols...)
}

// rowKey fingerprints a row over the given columns. The value's dynamic
// type is part of the key so that int(1) and "1" stay distinct.
func (f *Frame) rowKey(row int, cols []string) string {
	var b strings.Builder
	for _, name := range cols {
		v := f.cols[name][row]
		fmt.Fprintf(&b, "%T=%v\x1f", v, v)
	}
	return b.String()
}

// Equal reports whether two Frames have identical column order, names and
// cell values. Intended for tests.
func (f *Frame) Equal(other *Frame) bool {
	if other == nil || f.rows != other.rows || len(f.names) != len(other.names) {
		return false
	}
	for i, name := range f.names {
		if other.names[i] != name {
			return false
		}
		a, b := f.cols[name], other.cols[name]
		for row := 0; row < f.rows; row++ {
			if fmt.Sprintf("%T=%v", a[row], a[row]) != fmt.Sprintf("%T=%v", b[row], b[row]) {
				return false
			}
		}
	}
	return true
}

// String renders the Frame as an aligned text table.
func (f *Frame) String() string {
	widths := make([]int, len(f.names))
	cells := make([][]string, f.rows)
	for j, name := range f.names {
		widths[j] = len(name)
	}
	for i := 0; i < f.rows; i++ {
		row := make([]string, len(f.names))
		for j, name := range f.names {
			v := f.cols[name][i]
			s := "<nil>"
			if v != nil {
				s = fmt.Sprintf("%v", v)
			}
			row[j] = s
			if len(s) > widths[j] {
				widths[j] = len(s)
			}
		}
		cells[i] = row
	}

	var b strings.Builder
	for j, name := range f.names {
		fmt.Fprintf(&b, "%-*s  ", widths[j], name)
	}
	b.WriteByte('\n')
	for _, row := range cells {
		for j, s := range row {
			fmt.Fprintf(&b, "%-*s  ", widths[j], s)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
