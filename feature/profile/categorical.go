package profile

import (
	"sort"

	"data-integrity/core/frame"
	"data-integrity/core/utils"

	"gonum.org/v1/gonum/stat"
)

// ToCategorical replaces every string column with integer category codes.
// Codes follow the lexical order of the distinct values; missing cells get
// code -1. Non-string columns pass through unchanged.
func ToCategorical(data any) (*frame.Frame, error) {
	f, err := frame.Coerce(data)
	if err != nil {
		return nil, err
	}

	cols := make([]frame.Column, 0, f.NumCols())
	for _, name := range f.Columns() {
		values, _ := f.Values(name)
		if isStringColumn(values) {
			values = categoryCodes(values)
		}
		cols = append(cols, frame.Column{Name: name, Values: values})
	}
	return frame.New(cols...)
}

// isStringColumn reports whether every non-missing cell is a string. An
// all-missing column is not a string column.
func isStringColumn(values []any) bool {
	seen := false
	for _, v := range values {
		if frame.IsMissing(v) {
			continue
		}
		if _, ok := v.(string); !ok {
			return false
		}
		seen = true
	}
	return seen
}

func categoryCodes(values []any) []any {
	distinct := make(map[string]struct{}, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			distinct[s] = struct{}{}
		}
	}
	categories := make([]string, 0, len(distinct))
	for s := range distinct {
		categories = append(categories, s)
	}
	sort.Strings(categories)

	codes := make(map[string]int, len(categories))
	for i, s := range categories {
		codes[s] = i
	}

	out := make([]any, len(values))
	for i, v := range values {
		if s, ok := v.(string); ok {
			out[i] = codes[s]
		} else {
			out[i] = -1
		}
	}
	return out
}

// CorrelationPairs computes the Pearson correlation of every distinct
// column pair, string columns first encoded as category codes. The result
// frame has columns var1, var2 and corr, sorted by correlation descending.
// Pairs with no overlapping numeric rows, or with perfect positive
// correlation, are omitted.
func CorrelationPairs(data any) (*frame.Frame, error) {
	f, err := ToCategorical(data)
	if err != nil {
		return nil, err
	}

	names := f.Columns()
	numeric := make(map[string][]floatCell, len(names))
	for _, name := range names {
		values, _ := f.Values(name)
		numeric[name] = floatCells(values)
	}

	type pair struct {
		var1, var2 string
		corr       float64
	}
	var pairs []pair
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			r, ok := pairCorrelation(numeric[names[i]], numeric[names[j]])
			if !ok || r > 1-1e-12 {
				continue
			}
			pairs = append(pairs, pair{var1: names[i], var2: names[j], corr: r})
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].corr > pairs[b].corr })

	var1 := make([]any, len(pairs))
	var2 := make([]any, len(pairs))
	corr := make([]any, len(pairs))
	for i, p := range pairs {
		var1[i] = p.var1
		var2[i] = p.var2
		corr[i] = p.corr
	}
	return frame.New(
		frame.Column{Name: "var1", Values: var1},
		frame.Column{Name: "var2", Values: var2},
		frame.Column{Name: "corr", Values: corr},
	)
}

// floatCell is a column cell coerced to float, tracking coercion failure
// per row so pairs can exclude incomplete rows without dropping the column.
type floatCell struct {
	value float64
	ok    bool
}

func floatCells(values []any) []floatCell {
	cells := make([]floatCell, len(values))
	for i, v := range values {
		if frame.IsMissing(v) {
			continue
		}
		f, err := utils.Float(v)
		if err != nil {
			continue
		}
		cells[i] = floatCell{value: f, ok: true}
	}
	return cells
}

func pairCorrelation(a, b []floatCell) (float64, bool) {
	var xs, ys []float64
	for i := range a {
		if a[i].ok && b[i].ok {
			xs = append(xs, a[i].value)
			ys = append(ys, b[i].value)
		}
	}
	if len(xs) < 2 {
		return 0, false
	}
	r := stat.Correlation(xs, ys, nil)
	if r != r { // NaN: zero variance on either side
		return 0, false
	}
	return r, true
}
