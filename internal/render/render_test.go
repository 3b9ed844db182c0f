package render_test

import (
	"strings"
	"testing"

	"tagcloud/internal/cloud"
	"tagcloud/internal/render"
)

func TestDocumentShape(t *testing.T) {
	ordered := []cloud.WordCount{
		{Word: "cat", Count: 2},
		{Word: "mat", Count: 1},
		{Word: "the", Count: 3},
	}
	fonts := map[string]int{"the": 48, "cat": 30, "mat": 11}

	doc := render.Document("input.txt", 3, ordered, fonts, "tagcloud.css")

	want := "<html>\n" +
		"<head>\n" +
		"<title>Top 3 words in input.txt</title>\n" +
		"<link href=\"tagcloud.css\" rel=\"stylesheet\" type=\"text/css\">\n" +
		"</head>\n" +
		"<body>\n" +
		"<h2>Top 3 words in input.txt</h2>\n" +
		"<hr>\n" +
		"<div class=\"cdiv\">\n" +
		"<p class=\"cbox\">\n" +
		"<span style=\"cursor:default\" class=\"f30\" title=\"count: 2\">cat</span>\n" +
		"<span style=\"cursor:default\" class=\"f11\" title=\"count: 1\">mat</span>\n" +
		"<span style=\"cursor:default\" class=\"f48\" title=\"count: 3\">the</span>\n" +
		"</p>\n" +
		"</div>\n" +
		"</body>\n" +
		"</html>\n"
	if doc != want {
		t.Fatalf("document mismatch:\ngot:\n%s\nwant:\n%s", doc, want)
	}
}

func TestDocumentEmitsWordsVerbatim(t *testing.T) {
	ordered := []cloud.WordCount{{Word: "<b>bold</b>", Count: 1}}
	fonts := map[string]int{"<b>bold</b>": 11}

	doc := render.Document("x", 1, ordered, fonts, "tagcloud.css")
	if !strings.Contains(doc, "><b>bold</b></span>") {
		t.Fatalf("word not emitted verbatim:\n%s", doc)
	}
}

func TestDocumentCustomStylesheetName(t *testing.T) {
	doc := render.Document("x", 1, nil, nil, "styles/cloud.css")
	if !strings.Contains(doc, "<link href=\"styles/cloud.css\"") {
		t.Fatalf("stylesheet name not referenced:\n%s", doc)
	}
}

func TestStylesheetCoversFontLevels(t *testing.T) {
	css := render.Stylesheet()
	for _, class := range []string{".f11", ".f30", ".f48", ".cbox", ".cdiv"} {
		if !strings.Contains(css, class) {
			t.Fatalf("stylesheet missing %s", class)
		}
	}
}
