// Package render emits the tag cloud HTML document and carries the bundled
// companion stylesheet.
//
// Word text is emitted verbatim. The reference output format predates any
// escaping, so markup-bearing words pass straight into the document; callers
// feeding untrusted input should sanitize upstream.
package render
