// Package rank selects the top-N entries from a frequency table and
// provides the alphabetical view used for rendering.
//
// Equal counts order alphabetically ascending. The reference behavior left
// the tie-break unspecified; fixing it keeps a given input reproducible
// across runs.
package rank
