// Package frequency builds case-insensitive word frequency tables from raw
// text. Counting is a single pass over the tokenizer output; the resulting
// table is owned by the caller and never mutated afterwards.
package frequency
