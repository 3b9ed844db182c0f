package rank

import (
	"fmt"
	"sort"
	"strings"

	"tagcloud/internal/cloud"
	"tagcloud/internal/frequency"
)

// Select returns the n highest-count entries from the table, ordered by
// count descending with alphabetical ascending tie-break. It fails with
// cloud.ErrInvalidArgument when n is not positive or exceeds the number of
// distinct words.
func Select(table frequency.Table, n int) ([]cloud.WordCount, error) {
	if n <= 0 {
		return nil, cloud.Wrap(cloud.ErrInvalidArgument, "rank", "select",
			fmt.Sprintf("count must be positive, got %d", n), nil)
	}
	if distinct := table.Distinct(); n > distinct {
		return nil, cloud.Wrap(cloud.ErrInvalidArgument, "rank", "select",
			fmt.Sprintf("count %d exceeds %d distinct words", n, distinct), nil)
	}

	entries := table.Entries()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
	return entries[:n:n], nil
}

// Alphabetical returns a copy of selection sorted by word text,
// case-insensitive ascending. Counts are untouched.
func Alphabetical(selection []cloud.WordCount) []cloud.WordCount {
	ordered := make([]cloud.WordCount, len(selection))
	copy(ordered, selection)
	sort.SliceStable(ordered, func(i, j int) bool {
		a := strings.ToLower(ordered[i].Word)
		b := strings.ToLower(ordered[j].Word)
		if a != b {
			return a < b
		}
		return ordered[i].Word < ordered[j].Word
	})
	return ordered
}
