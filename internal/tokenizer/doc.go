// Package tokenizer splits text into maximal runs of separator or
// non-separator characters.
//
// Classification is strictly set based: every rune in the configured
// separator set is a boundary character and everything else belongs to a
// word. Tokens tile the input exactly; concatenating the tokens produced
// from offset zero reconstructs the original buffer.
package tokenizer
