package frame

// Sentinels are the string values conventionally used to denote missing
// data in exported datasets. They are counted as values by uniqueness
// statistics but reported separately by sentinel-aware operations.
var Sentinels = []string{"NaN", "N/A", `\NA`, `\N`, "/N", "//N", "None", "nan", "NA"}

var sentinelSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Sentinels))
	for _, s := range Sentinels {
		set[s] = struct{}{}
	}
	return set
}()

// IsMissing reports whether a cell is a true missing value.
func IsMissing(v any) bool { return v == nil }

// IsSentinel reports whether a cell is a string sentinel for missing data.
func IsSentinel(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, hit := sentinelSet[s]
	return hit
}

// IsMissingOrSentinel reports whether a cell is nil or a missing-data
// sentinel string.
func IsMissingOrSentinel(v any) bool {
	return IsMissing(v) || IsSentinel(v)
}
