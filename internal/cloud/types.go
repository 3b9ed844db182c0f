package cloud

// WordCount pairs a lowercase word with its occurrence count. The word never
// contains separator characters and the count is always at least one.
type WordCount struct {
	Word  string
	Count int
}
