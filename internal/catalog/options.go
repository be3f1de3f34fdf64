package catalog

import (
	"math"
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// BuildOptions turns raw field values into a filter option list: empties
// dropped, duplicates removed, then sorted. Numeric mode (used for years)
// sorts descending by integer value with unparsable values last; otherwise
// values sort ascending in collation order. The result is deterministic for
// any input multiset.
func BuildOptions(values []string, numeric bool) []string {
	seen := make(map[string]struct{}, len(values))
	options := make([]string, 0, len(values))
	for _, value := range values {
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		options = append(options, value)
	}

	if numeric {
		sort.Slice(options, func(i, j int) bool {
			a, b := numericRank(options[i]), numericRank(options[j])
			if a != b {
				return a > b
			}
			return options[i] < options[j]
		})
		return options
	}

	collator := collate.New(language.Und)
	sort.Slice(options, func(i, j int) bool {
		if cmp := collator.CompareString(options[i], options[j]); cmp != 0 {
			return cmp < 0
		}
		return options[i] < options[j]
	})
	return options
}

// numericRank parses a value for descending numeric sort. Values that do not
// parse rank below every parsable value.
func numericRank(value string) int64 {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return math.MinInt64
	}
	return n
}
