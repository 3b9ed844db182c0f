package tokenizer

import "unicode/utf8"

// DefaultSet is the separator set used when none is configured: whitespace
// plus the punctuation and symbols the companion stylesheet tooling treats
// as word boundaries.
const DefaultSet = " \t\n\r,-.!?[]';:/()*`\"=-\\|+&^%$#@"

// Kind classifies a token as a word or a separator run.
type Kind int

const (
	Word Kind = iota
	Separator
)

// Token is a maximal same-class substring of the input. Text is never empty
// for tokens produced from an in-range position.
type Token struct {
	Text string
	Kind Kind
}

// Separators is an immutable separator character set. The zero value treats
// every rune as a word character; build real sets with New.
type Separators struct {
	set map[rune]struct{}
}

// New builds a separator set from the runes of chars.
func New(chars string) Separators {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return Separators{set: set}
}

// Contains reports whether r is a separator character.
func (s Separators) Contains(r rune) bool {
	_, ok := s.set[r]
	return ok
}

// Next returns the longest token starting at pos whose runes are all inside
// the separator set or all outside it. pos must satisfy
// 0 <= pos < len(text); out-of-range positions yield a zero Token. The scan
// never reads past the end of text, so a final character always comes back
// as a length-1 token.
func (s Separators) Next(text string, pos int) Token {
	if pos < 0 || pos >= len(text) {
		return Token{}
	}
	first, _ := utf8.DecodeRuneInString(text[pos:])
	isSep := s.Contains(first)

	end := pos
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if s.Contains(r) != isSep {
			break
		}
		end += size
	}

	kind := Word
	if isSep {
		kind = Separator
	}
	return Token{Text: text[pos:end], Kind: kind}
}
