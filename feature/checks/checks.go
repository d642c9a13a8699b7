package checks

import (
	"fmt"
	"math"
	"sort"
	"time"

	"data-integrity/core/frame"
	"data-integrity/core/render"
	"data-integrity/core/utils"

	"github.com/araddon/dateparse"
	"gonum.org/v1/gonum/stat"
)

// Duplicates returns the rows repeated across the full column set, or
// across cols when given. The first occurrence of each row is kept out of
// the result.
func Duplicates(data any, cols ...string) (*frame.Frame, error) {
	f, err := frame.Coerce(data)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(f, cols...); err != nil {
		return nil, err
	}
	dup := make(map[int]struct{})
	for _, i := range f.DuplicatedRows(cols...) {
		dup[i] = struct{}{}
	}
	return f.Filter(func(row int) bool {
		_, hit := dup[row]
		return hit
	}), nil
}

// MissingIdentifier returns the rows whose identifier columns are all
// missing. A row with at least one identifier present is not reported.
func MissingIdentifier(data any, idCols []string) (*frame.Frame, error) {
	f, err := frame.Coerce(data)
	if err != nil {
		return nil, err
	}
	if len(idCols) == 0 {
		return nil, fmt.Errorf("checks: no identifier columns given")
	}
	if err := requireColumns(f, idCols...); err != nil {
		return nil, err
	}

	columns := make([][]any, len(idCols))
	for i, name := range idCols {
		columns[i], _ = f.Values(name)
	}
	return f.Filter(func(row int) bool {
		for _, vals := range columns {
			if !frame.IsMissing(vals[row]) {
				return false
			}
		}
		return true
	}), nil
}

// MissingValues returns the rows where col is nil or a missing-data
// sentinel string.
func MissingValues(data any, col string) (*frame.Frame, error) {
	f, err := frame.Coerce(data)
	if err != nil {
		return nil, err
	}
	values, err := f.Values(col)
	if err != nil {
		return nil, err
	}
	return f.Filter(func(row int) bool {
		return frame.IsMissingOrSentinel(values[row])
	}), nil
}

// FutureDates returns the rows of each date column whose parsed value lies
// after the reference date. The reference may be a time.Time or a parseable
// string; cells that fail to parse are skipped.
func FutureDates(data any, dateCols []string, reference any) (*frame.Frame, error) {
	f, err := frame.Coerce(data)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(f, dateCols...); err != nil {
		return nil, err
	}
	ref, err := referenceTime(reference)
	if err != nil {
		return nil, err
	}

	result := emptyLike(f)
	for _, col := range dateCols {
		values, _ := f.Values(col)
		future := f.Filter(func(row int) bool {
			if frame.IsMissing(values[row]) {
				return false
			}
			t, err := parseDate(values[row])
			if err != nil {
				return false
			}
			return t.After(ref)
		})
		result, err = result.Concat(future)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func referenceTime(reference any) (time.Time, error) {
	switch v := reference.(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := dateparse.ParseAny(v)
		if err != nil {
			return time.Time{}, fmt.Errorf("checks: reference date %q: %w", v, err)
		}
		return t, nil
	default:
		return time.Time{}, fmt.Errorf("checks: reference date must be time.Time or string, got %T", reference)
	}
}

func parseDate(v any) (time.Time, error) {
	if t, ok := v.(time.Time); ok {
		return t, nil
	}
	return dateparse.ParseAny(utils.ToString(v))
}

// VolumeAnomaly returns the rows whose absolute value's share of col's
// total absolute sum, as a percentage rounded to two decimals, exceeds
// threshold. Missing cells drop out of the total and are never flagged.
func VolumeAnomaly(data any, col string, threshold float64) (*frame.Frame, error) {
	f, err := frame.Coerce(data)
	if err != nil {
		return nil, err
	}
	cells, err := columnNumeric(f, col)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, c := range cells {
		if c.ok {
			total += math.Abs(c.value)
		}
	}
	if total == 0 {
		return f.Filter(func(int) bool { return false }), nil
	}
	return f.Filter(func(row int) bool {
		if !cells[row].ok {
			return false
		}
		share := math.Round(100*math.Abs(cells[row].value)/total*100) / 100
		return share > threshold
	}), nil
}

// NumericOptions carries the optional side effects of NumericAnomaly.
type NumericOptions struct {
	// Renderer receives the column distribution and the normalized box
	// plot when set. Rendering failures are returned, the anomaly result
	// is unaffected by the renderer.
	Renderer render.Renderer
	// DistributionPath and BoxPath name the files the renderer writes.
	DistributionPath string
	BoxPath          string
}

// NumericAnomaly returns the rows whose absolute z-score on col exceeds
// threshold. Missing cells take no part in the mean and standard deviation
// and are never flagged.
func NumericAnomaly(data any, col string, threshold float64, opts NumericOptions) (*frame.Frame, error) {
	f, err := frame.Coerce(data)
	if err != nil {
		return nil, err
	}
	cells, err := columnNumeric(f, col)
	if err != nil {
		return nil, err
	}

	present := make([]float64, 0, len(cells))
	for _, c := range cells {
		if c.ok {
			present = append(present, c.value)
		}
	}

	mean, std := stat.MeanStdDev(present, nil)
	scores := make([]float64, len(cells))
	if std > 0 {
		for i, c := range cells {
			if c.ok {
				scores[i] = math.Abs((c.value - mean) / std)
			}
		}
	}

	if opts.Renderer != nil {
		if err := opts.Renderer.SaveDistribution(col+" distribution", present, opts.DistributionPath); err != nil {
			return nil, fmt.Errorf("checks: render distribution: %w", err)
		}
		if err := opts.Renderer.SaveBox("absolute normalized "+col, scores, threshold, opts.BoxPath); err != nil {
			return nil, fmt.Errorf("checks: render box plot: %w", err)
		}
	}

	return f.Filter(func(row int) bool {
		return cells[row].ok && scores[row] > threshold
	}), nil
}

// TypeDistribution returns the runtime value-type counts of col as a frame
// with columns data_type, count and pct, sorted by count descending.
func TypeDistribution(data any, col string) (*frame.Frame, error) {
	f, err := frame.Coerce(data)
	if err != nil {
		return nil, err
	}
	values, err := f.Values(col)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, v := range values {
		counts[fmt.Sprintf("%T", v)]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	types := make([]any, len(names))
	count := make([]any, len(names))
	pct := make([]any, len(names))
	for i, name := range names {
		types[i] = name
		count[i] = counts[name]
		pct[i] = 100 * float64(counts[name]) / float64(len(values))
	}
	return frame.New(
		frame.Column{Name: "data_type", Values: types},
		frame.Column{Name: "count", Values: count},
		frame.Column{Name: "pct", Values: pct},
	)
}

// numericCell is a column cell coerced to float64, with missing cells
// marked absent so checks can exclude them row by row.
type numericCell struct {
	value float64
	ok    bool
}

// columnNumeric coerces col to float64 per cell. Missing cells stay
// absent; any present cell that cannot be coerced fails the whole check.
func columnNumeric(f *frame.Frame, col string) ([]numericCell, error) {
	values, err := f.Values(col)
	if err != nil {
		return nil, err
	}
	cells := make([]numericCell, len(values))
	for i, v := range values {
		if frame.IsMissing(v) {
			continue
		}
		x, err := utils.Float(v)
		if err != nil {
			return nil, fmt.Errorf("checks: column %q row %d: %w", col, i, err)
		}
		cells[i] = numericCell{value: x, ok: true}
	}
	return cells, nil
}

func requireColumns(f *frame.Frame, cols ...string) error {
	for _, name := range cols {
		if !f.HasColumn(name) {
			return fmt.Errorf("checks: no column %q", name)
		}
	}
	return nil
}

// emptyLike returns a zero-row frame with f's columns.
func emptyLike(f *frame.Frame) *frame.Frame {
	return f.Filter(func(int) bool { return false })
}
