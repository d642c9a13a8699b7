package profile

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"data-integrity/core/frame"

	"go.uber.org/zap"
)

// candidateTypes lists the convertibility heuristics in evaluation order.
var candidateTypes = []struct {
	name  string
	check func([]any) bool
}{
	{"string", StringLike},
	{"bool", BoolLike},
	{"int", IntLike},
	{"float", FloatLike},
	{"datetime", DatetimeLike},
}

// Profiler computes per-column statistics for a dataset.
type Profiler struct {
	logger *zap.Logger
}

// New creates a Profiler. A nil logger disables warnings.
func New(l *zap.Logger) *Profiler {
	if l == nil {
		l = zap.NewNop()
	}
	return &Profiler{logger: l}
}

// TypeReport describes the observed and candidate types of one column.
type TypeReport struct {
	// Column is the column name.
	Column string
	// TypesFound is the runtime type composition of the non-missing
	// values, formatted as "type: count (percent), ...". Empty when the
	// column holds at most one value.
	TypesFound string
	// ConvertibleTo lists the candidate conversion types the column
	// passed, in heuristic order. Empty when every heuristic failed or the
	// column could not be evaluated.
	ConvertibleTo []string
}

// ColumnCount is a per-column scalar statistic with its share of the total
// row count.
type ColumnCount struct {
	Column  string
	Count   int
	Percent float64
}

// MissingReport counts the missing cells of one column. Sentinels breaks
// down non-null string stand-ins for missing data separately; sentinel
// cells are not part of Count.
type MissingReport struct {
	Column    string
	Count     int
	Percent   float64
	Sentinels map[string]int
}

// InferTypes reports the runtime type composition and the candidate
// conversion types of every column. A column that cannot be evaluated is
// logged as a warning and reported with empty fields.
func (p *Profiler) InferTypes(data any) ([]TypeReport, error) {
	f, err := frame.Coerce(data)
	if err != nil {
		return nil, err
	}

	reports := make([]TypeReport, 0, f.NumCols())
	for _, col := range f.Columns() {
		report := TypeReport{Column: col}
		values, _ := f.Values(col)
		sampled := dropMissing(values)
		if len(sampled) > 1 {
			p.inferColumn(col, sampled, &report)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// inferColumn fills in one column's report, recovering from panicking
// heuristics so a single bad column never aborts the profiling call.
func (p *Profiler) inferColumn(col string, sampled []any, report *TypeReport) {
	defer func() {
		if r := recover(); r != nil {
			report.TypesFound = ""
			report.ConvertibleTo = nil
			p.logger.Warn("Column could not be profiled",
				zap.String("column", col),
				zap.Any("error", r),
			)
		}
	}()

	report.TypesFound = typeComposition(sampled)
	for _, candidate := range candidateTypes {
		if candidate.check(sampled) {
			report.ConvertibleTo = append(report.ConvertibleTo, candidate.name)
		}
	}
}

// typeComposition formats the runtime type distribution of values as
// "type: count (percent), ..." with types in lexical order.
func typeComposition(values []any) string {
	counts := make(map[string]int)
	for _, v := range values {
		counts[typeName(v)]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		pct := round2(100 * float64(counts[name]) / float64(len(values)))
		fmt.Fprintf(&b, "%s: %d (%.2f), ", name, counts[name], pct)
	}
	return strings.TrimSuffix(b.String(), ", ")
}

// UniqueCounts reports the number of distinct non-missing values per
// column.
func (p *Profiler) UniqueCounts(data any) ([]ColumnCount, error) {
	f, err := frame.Coerce(data)
	if err != nil {
		return nil, err
	}
	counts := make([]ColumnCount, 0, f.NumCols())
	for _, col := range f.Columns() {
		values, _ := f.Values(col)
		n := uniqueCount(values)
		counts = append(counts, ColumnCount{
			Column:  col,
			Count:   n,
			Percent: percentOf(n, f.NumRows()),
		})
	}
	return counts, nil
}

// DuplicateCounts reports per column how many non-missing values are
// repeats of an earlier value, so that unique + duplicates + missing equals
// the total row count.
func (p *Profiler) DuplicateCounts(data any) ([]ColumnCount, error) {
	f, err := frame.Coerce(data)
	if err != nil {
		return nil, err
	}
	counts := make([]ColumnCount, 0, f.NumCols())
	for _, col := range f.Columns() {
		values, _ := f.Values(col)
		n := (f.NumRows() - missingCount(values)) - uniqueCount(values)
		counts = append(counts, ColumnCount{
			Column:  col,
			Count:   n,
			Percent: percentOf(n, f.NumRows()),
		})
	}
	return counts, nil
}

// MissingCounts reports per column the number of missing cells plus a
// breakdown of string sentinels standing in for missing data.
func (p *Profiler) MissingCounts(data any) ([]MissingReport, error) {
	f, err := frame.Coerce(data)
	if err != nil {
		return nil, err
	}
	reports := make([]MissingReport, 0, f.NumCols())
	for _, col := range f.Columns() {
		values, _ := f.Values(col)
		n := missingCount(values)
		reports = append(reports, MissingReport{
			Column:    col,
			Count:     n,
			Percent:   percentOf(n, f.NumRows()),
			Sentinels: sentinelBreakdown(values),
		})
	}
	return reports, nil
}

// AutoProfile joins type inference and the cardinality counts into one
// table with a row per input column.
func (p *Profiler) AutoProfile(data any) (*frame.Frame, error) {
	f, err := frame.Coerce(data)
	if err != nil {
		return nil, err
	}

	types, err := p.InferTypes(f)
	if err != nil {
		return nil, err
	}
	uniques, err := p.UniqueCounts(f)
	if err != nil {
		return nil, err
	}
	duplicates, err := p.DuplicateCounts(f)
	if err != nil {
		return nil, err
	}
	missing, err := p.MissingCounts(f)
	if err != nil {
		return nil, err
	}

	n := len(types)
	cols := []frame.Column{
		{Name: "column", Values: make([]any, n)},
		{Name: "types_found", Values: make([]any, n)},
		{Name: "can_convert_to", Values: make([]any, n)},
		{Name: "unique", Values: make([]any, n)},
		{Name: "unique_pct", Values: make([]any, n)},
		{Name: "duplicates", Values: make([]any, n)},
		{Name: "duplicates_pct", Values: make([]any, n)},
		{Name: "missing", Values: make([]any, n)},
		{Name: "missing_pct", Values: make([]any, n)},
		{Name: "sentinels", Values: make([]any, n)},
	}
	for i := 0; i < n; i++ {
		cols[0].Values[i] = types[i].Column
		cols[1].Values[i] = types[i].TypesFound
		cols[2].Values[i] = strings.Join(types[i].ConvertibleTo, ",")
		cols[3].Values[i] = uniques[i].Count
		cols[4].Values[i] = uniques[i].Percent
		cols[5].Values[i] = duplicates[i].Count
		cols[6].Values[i] = duplicates[i].Percent
		cols[7].Values[i] = missing[i].Count
		cols[8].Values[i] = missing[i].Percent
		cols[9].Values[i] = formatSentinels(missing[i].Sentinels)
	}
	return frame.New(cols...)
}

// formatSentinels renders a sentinel breakdown as "name: count, ..." with
// names in lexical order, or "" when no sentinels occurred.
func formatSentinels(breakdown map[string]int) string {
	if len(breakdown) == 0 {
		return ""
	}
	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %d", name, breakdown[name])
	}
	return strings.Join(parts, ", ")
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

func dropMissing(values []any) []any {
	kept := make([]any, 0, len(values))
	for _, v := range values {
		if !frame.IsMissing(v) {
			kept = append(kept, v)
		}
	}
	return kept
}

func missingCount(values []any) int {
	n := 0
	for _, v := range values {
		if frame.IsMissing(v) {
			n++
		}
	}
	return n
}

func uniqueCount(values []any) int {
	distinct := make(map[any]struct{}, len(values))
	for _, v := range values {
		if frame.IsMissing(v) {
			continue
		}
		distinct[fingerprint(v)] = struct{}{}
	}
	return len(distinct)
}

func sentinelBreakdown(values []any) map[string]int {
	breakdown := make(map[string]int)
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if frame.IsSentinel(s) {
			breakdown[s]++
		}
	}
	return breakdown
}

func percentOf(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return round4(100 * float64(n) / float64(total))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
