package textio

import (
	"bufio"
	"io"
	"strings"
)

// Lines longer than this abort the read instead of silently truncating.
const maxLineBytes = 16 << 20

// JoinLines reads r to the end and concatenates its lines, appending a
// single space after each one. The inserted spaces keep words on adjacent
// lines from fusing during tokenization, and line boundaries otherwise
// disappear from the buffer.
func JoinLines(r io.Reader) (string, error) {
	var b strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		b.WriteString(scanner.Text())
		b.WriteByte(' ')
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}
