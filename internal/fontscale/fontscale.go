package fontscale

import "tagcloud/internal/cloud"

// Range bounds the font levels assigned to a selection. Default is the
// level every word receives when all counts are equal.
type Range struct {
	Min     int
	Max     int
	Default int
}

// DefaultRange matches the companion stylesheet classes f11 through f48.
func DefaultRange() Range {
	return Range{Min: 11, Max: 48, Default: 11}
}

// Assign maps every word in the selection to a font level within the range.
// When the selection's counts are all equal each word receives r.Default;
// otherwise the level is
//
//	r.Max - (maxCount-count)*(r.Max-r.Min)/(maxCount-minCount)
//
// with truncating division, clamped to at least r.Min. Higher counts never
// receive smaller levels.
func Assign(selection []cloud.WordCount, r Range) map[string]int {
	fonts := make(map[string]int, len(selection))
	if len(selection) == 0 {
		return fonts
	}

	maxCount := selection[0].Count
	minCount := selection[0].Count
	for _, entry := range selection[1:] {
		if entry.Count > maxCount {
			maxCount = entry.Count
		}
		if entry.Count < minCount {
			minCount = entry.Count
		}
	}

	for _, entry := range selection {
		if maxCount == minCount {
			fonts[entry.Word] = r.Default
			continue
		}
		font := r.Max - (maxCount-entry.Count)*(r.Max-r.Min)/(maxCount-minCount)
		if font < r.Min {
			font = r.Min
		}
		fonts[entry.Word] = font
	}
	return fonts
}
