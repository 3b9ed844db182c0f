package frequency_test

import (
	"testing"

	"tagcloud/internal/frequency"
	"tagcloud/internal/tokenizer"
)

func defaultSeps() tokenizer.Separators {
	return tokenizer.New(tokenizer.DefaultSet)
}

func TestCountScenario(t *testing.T) {
	table := frequency.Count("the Cat sat on the mat. The cat ran.", defaultSeps())

	want := frequency.Table{
		"the": 3,
		"cat": 2,
		"sat": 1,
		"on":  1,
		"mat": 1,
		"ran": 1,
	}
	if len(table) != len(want) {
		t.Fatalf("distinct words: got %d want %d (%v)", len(table), len(want), table)
	}
	for word, count := range want {
		if table[word] != count {
			t.Fatalf("count for %q: got %d want %d", word, table[word], count)
		}
	}
	if table.Total() != 9 {
		t.Fatalf("total words: got %d want 9", table.Total())
	}
	if table.Distinct() != 6 {
		t.Fatalf("distinct words: got %d want 6", table.Distinct())
	}
}

func TestCountCollapsesCaseVariants(t *testing.T) {
	table := frequency.Count("The THE the tHe", defaultSeps())
	if table.Distinct() != 1 {
		t.Fatalf("expected one distinct word, got %v", table)
	}
	if table["the"] != 4 {
		t.Fatalf("count for \"the\": got %d want 4", table["the"])
	}
}

func TestCountUnicodeLowercasing(t *testing.T) {
	table := frequency.Count("Straße STRASSE Über über", defaultSeps())
	if table["über"] != 2 {
		t.Fatalf("count for \"über\": got %d want 2", table["über"])
	}
	// Language-neutral mapping keeps straße and strasse distinct.
	if table["straße"] != 1 || table["strasse"] != 1 {
		t.Fatalf("unexpected table: %v", table)
	}
}

func TestCountEmptyAndSeparatorOnlyInput(t *testing.T) {
	for _, input := range []string{"", "   ", ",.!?", "\t\n\r"} {
		table := frequency.Count(input, defaultSeps())
		if table.Distinct() != 0 {
			t.Fatalf("Count(%q) produced words: %v", input, table)
		}
	}
}

func TestCountWordAtBufferEnd(t *testing.T) {
	table := frequency.Count("no trailing separator", defaultSeps())
	if table["separator"] != 1 {
		t.Fatalf("final word not counted: %v", table)
	}
}
