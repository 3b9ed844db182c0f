// Package pipeline wires the tag cloud stages into a single linear pass:
// count, select, order, scale, render. A run either produces a complete
// document or fails with a classified error; there is no partial output and
// no retry.
package pipeline
