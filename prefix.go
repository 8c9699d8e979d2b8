package fxchain

import (
	"fmt"
	"strings"
)

const prefixToken = "PREFIX("

// ReplacePrefix rewrites every PREFIX(arg) in text to prefix_arg.
//
// GLSL before 1.30 has no token pasting, so effect-private names are made
// unique by plain text substitution. The argument is copied verbatim and may
// itself contain balanced parentheses. A PREFIX( without its matching ')'
// yields ErrUnbalancedPrefix. The token only matches at the start of an
// identifier, so names such as MY_PREFIX(x) are left alone.
func ReplacePrefix(text, prefix string) (string, error) {
	var b strings.Builder
	b.Grow(len(text))

	start := 0
	for start < len(text) {
		pos := indexToken(text, start)
		if pos < 0 {
			b.WriteString(text[start:])
			break
		}

		b.WriteString(text[start:pos])
		b.WriteString(prefix)
		b.WriteByte('_')

		argStart := pos + len(prefixToken)
		depth := 1
		end := argStart
		for ; end < len(text); end++ {
			switch text[end] {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth == 0 {
				break
			}
		}
		if depth != 0 {
			return "", fmt.Errorf("%w: opened at offset %d", ErrUnbalancedPrefix, pos)
		}

		b.WriteString(text[argStart:end])
		start = end + 1
	}
	return b.String(), nil
}

// indexToken finds the next PREFIX( at or after from that is not the tail
// of a longer identifier.
func indexToken(text string, from int) int {
	for from < len(text) {
		i := strings.Index(text[from:], prefixToken)
		if i < 0 {
			return -1
		}
		pos := from + i
		if pos == 0 || !isIdentByte(text[pos-1]) {
			return pos
		}
		from = pos + len(prefixToken)
	}
	return -1
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
