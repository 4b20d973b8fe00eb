// Package statprofile derives a human-readable profile label from the packed
// stat string of an equipment record.
package statprofile

import (
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"
)

const (
	// LabelAbsent is returned for missing or non-textual stat cells.
	LabelAbsent = "N/A"

	EntrySeparator = ", "
	NameSeparator  = ":"
)

// nameRewrites renames top stat names in the general case only.
var nameRewrites = map[string]string{
	"attack": "strength",
}

// Classify maps a stat string such as "attack:5, attack:5, defense:3" to its
// profile label. Entries are counted by full "name:value" identity.
func Classify(stats null.String) string {
	if !stats.Valid {
		return LabelAbsent
	}

	entries := strings.Split(stats.String, EntrySeparator)
	distinct := lo.Uniq(entries)
	frequency := lo.CountValues(entries)

	counts := lo.Map(distinct, func(entry string, _ int) int {
		return frequency[entry]
	})

	if len(lo.Uniq(counts)) == 1 && len(distinct) == 1 {
		return "pure " + entryName(distinct[0])
	}

	if len(distinct) == len(entries) {
		return joinCounts(counts) + " mixed"
	}

	highest := lo.Max(counts)
	top := lo.FilterMap(distinct, func(entry string, _ int) (string, bool) {
		if frequency[entry] != highest {
			return "", false
		}
		name := entryName(entry)
		if rewritten, ok := nameRewrites[name]; ok {
			name = rewritten
		}
		return name, true
	})

	return joinCounts(counts) + " " + strings.Join(top, EntrySeparator)
}

// ClassifyAny classifies a dynamically typed cell value. Anything that is not
// textual yields LabelAbsent.
func ClassifyAny(v any) string {
	switch s := v.(type) {
	case string:
		return Classify(null.StringFrom(s))
	case *string:
		return Classify(null.StringFromPtr(s))
	case null.String:
		return Classify(s)
	case *null.String:
		if s == nil {
			return LabelAbsent
		}
		return Classify(*s)
	default:
		return LabelAbsent
	}
}

// entryName returns the part of an entry before its first separator, or the
// whole entry when it has none.
func entryName(entry string) string {
	name, _, _ := strings.Cut(entry, NameSeparator)
	return name
}

func joinCounts(counts []int) string {
	sorted := make([]int, len(counts))
	copy(sorted, counts)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	parts := lo.Map(sorted, func(c int, _ int) string {
		return strconv.Itoa(c)
	})
	return strings.Join(parts, "/")
}
