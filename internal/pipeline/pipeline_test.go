package pipeline_test

import (
	"errors"
	"strings"
	"testing"

	"tagcloud/internal/cloud"
	"tagcloud/internal/fontscale"
	"tagcloud/internal/pipeline"
	"tagcloud/internal/tokenizer"
)

func defaultParams(n int) pipeline.Params {
	return pipeline.Params{
		Label:      "input.txt",
		N:          n,
		Separators: tokenizer.New(tokenizer.DefaultSet),
		Fonts:      fontscale.DefaultRange(),
		Stylesheet: "tagcloud.css",
	}
}

func TestRunScenario(t *testing.T) {
	result, err := pipeline.Run(nil, "the Cat sat on the mat. The cat ran.", defaultParams(3))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Words != 9 || result.Distinct != 6 {
		t.Fatalf("stats: got words=%d distinct=%d, want 9/6", result.Words, result.Distinct)
	}
	if result.RunID == "" {
		t.Fatal("expected a run ID")
	}

	wantOrder := []string{"cat", "mat", "the"}
	if len(result.Ordered) != len(wantOrder) {
		t.Fatalf("ordered length: got %d want %d", len(result.Ordered), len(wantOrder))
	}
	for i, word := range wantOrder {
		if result.Ordered[i].Word != word {
			t.Fatalf("ordered[%d]: got %q want %q", i, result.Ordered[i].Word, word)
		}
	}

	if result.Fonts["the"] != 48 {
		t.Fatalf("max-count font: got %d want 48", result.Fonts["the"])
	}
	if result.Fonts["mat"] != 11 {
		t.Fatalf("min-count font: got %d want 11", result.Fonts["mat"])
	}

	for _, fragment := range []string{
		"<title>Top 3 words in input.txt</title>",
		"<span style=\"cursor:default\" class=\"f48\" title=\"count: 3\">the</span>",
		"<span style=\"cursor:default\" class=\"f30\" title=\"count: 2\">cat</span>",
		"<span style=\"cursor:default\" class=\"f11\" title=\"count: 1\">mat</span>",
	} {
		if !strings.Contains(result.Document, fragment) {
			t.Fatalf("document missing %q:\n%s", fragment, result.Document)
		}
	}
}

func TestRunEqualCountsGetDefaultFont(t *testing.T) {
	result, err := pipeline.Run(nil, "a b c", defaultParams(3))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, word := range []string{"a", "b", "c"} {
		if result.Fonts[word] != 11 {
			t.Fatalf("font for %q: got %d want default 11", word, result.Fonts[word])
		}
	}
}

func TestRunEmptySourceBeforeNValidation(t *testing.T) {
	// N is absurd too, but the empty source must win.
	_, err := pipeline.Run(nil, "", defaultParams(10_000))
	if !errors.Is(err, cloud.ErrSourceEmpty) {
		t.Fatalf("empty text: got %v, want ErrSourceEmpty", err)
	}

	_, err = pipeline.Run(nil, " ,.!? \t", defaultParams(-3))
	if !errors.Is(err, cloud.ErrSourceEmpty) {
		t.Fatalf("separator-only text: got %v, want ErrSourceEmpty", err)
	}
}

func TestRunInvalidN(t *testing.T) {
	for _, n := range []int{0, -1, 7} {
		_, err := pipeline.Run(nil, "one two three", defaultParams(n))
		if !errors.Is(err, cloud.ErrInvalidArgument) {
			t.Fatalf("Run(n=%d): got %v, want ErrInvalidArgument", n, err)
		}
	}
}

func TestRunIdempotent(t *testing.T) {
	text := "to be or not to be, that is the question"
	first, err := pipeline.Run(nil, text, defaultParams(4))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := pipeline.Run(nil, text, defaultParams(4))
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if again.Document != first.Document {
			t.Fatalf("documents differ across runs:\n%s\n---\n%s", again.Document, first.Document)
		}
	}
}
