package render

import (
	_ "embed"
	"fmt"
	"strings"

	"tagcloud/internal/cloud"
)

//go:embed tagcloud.css
var stylesheet string

// Stylesheet returns the bundled companion stylesheet mapping font level
// classes f11 through f48 to CSS font sizes.
func Stylesheet() string {
	return stylesheet
}

// Document renders the full tag cloud HTML: a header naming the label and n,
// one span per entry in the given order annotated with its font level class
// and literal count, and a closing footer. The stylesheet is referenced by
// name only; materializing it is the caller's concern.
func Document(label string, n int, ordered []cloud.WordCount, fonts map[string]int, stylesheetName string) string {
	var b strings.Builder
	b.Grow(512 + len(ordered)*64)

	fmt.Fprintf(&b, "<html>\n<head>\n<title>Top %d words in %s</title>\n", n, label)
	fmt.Fprintf(&b, "<link href=\"%s\" rel=\"stylesheet\" type=\"text/css\">\n</head>\n", stylesheetName)
	fmt.Fprintf(&b, "<body>\n<h2>Top %d words in %s</h2>\n<hr>\n<div class=\"cdiv\">\n<p class=\"cbox\">\n", n, label)
	for _, entry := range ordered {
		fmt.Fprintf(&b, "<span style=\"cursor:default\" class=\"f%d\" title=\"count: %d\">%s</span>\n",
			fonts[entry.Word], entry.Count, entry.Word)
	}
	b.WriteString("</p>\n</div>\n</body>\n</html>\n")

	return b.String()
}
