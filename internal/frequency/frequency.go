package frequency

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tagcloud/internal/cloud"
	"tagcloud/internal/tokenizer"
)

// Table maps lowercase words to occurrence counts.
type Table map[string]int

// Count tokenizes text with the given separator set and tallies word
// occurrences. Words are lowercased with language-neutral Unicode case
// mapping, so case variants of the same word collapse to one entry.
// Separator tokens are discarded.
func Count(text string, seps tokenizer.Separators) Table {
	lower := cases.Lower(language.Und)
	table := make(Table)
	for pos := 0; pos < len(text); {
		tok := seps.Next(text, pos)
		if tok.Kind == tokenizer.Word {
			table[lower.String(tok.Text)]++
		}
		pos += len(tok.Text)
	}
	return table
}

// Distinct returns the number of unique words in the table.
func (t Table) Distinct() int {
	return len(t)
}

// Total returns the number of word tokens counted into the table.
func (t Table) Total() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// Entries returns the table contents as an unordered slice.
func (t Table) Entries() []cloud.WordCount {
	entries := make([]cloud.WordCount, 0, len(t))
	for word, count := range t {
		entries = append(entries, cloud.WordCount{Word: word, Count: count})
	}
	return entries
}
