package flipper

import (
	"fmt"
	"regexp"
)

var literalPattern = regexp.MustCompile(`0x[0-9a-fA-F]{2}`)

// ReverseByte mirrors the bit order of b: bit i of the result is bit 7-i of b.
func ReverseByte(b byte) byte {
	var d byte
	for i := 0; i < 8; i++ {
		d <<= 1
		d |= b & 1
		b >>= 1
	}
	return d
}

// FlipLine replaces every byte literal in line with its bit-reversed value.
// Lines without literals are returned unchanged.
func FlipLine(line string) string {
	out, _ := FlipLineCount(line)
	return out
}

// FlipLineCount behaves like FlipLine and also reports how many literals were replaced.
func FlipLineCount(line string) (string, int) {
	n := 0
	out := literalPattern.ReplaceAllStringFunc(line, func(lit string) string {
		n++
		return formatLiteral(ReverseByte(nibble(lit[2])<<4 | nibble(lit[3])))
	})
	return out, n
}

// nibble decodes a hex digit already validated by literalPattern.
func nibble(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}

func formatLiteral(b byte) string {
	return fmt.Sprintf("0x%02x", b)
}
