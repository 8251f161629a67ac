package editable

import "strings"

// Filter decides which typed runes reach the draft. current is the draft
// before the keystroke.
type Filter func(current string, typed []rune) []rune

// NumericFilter keeps digits, a single decimal point, spaces and the
// letters of the currency marker.
func NumericFilter(current string, typed []rune) []rune {
	seenDot := strings.ContainsRune(current, '.')
	out := make([]rune, 0, len(typed))
	for _, r := range typed {
		switch {
		case r >= '0' && r <= '9', r == ' ', r == 'S', r == 'R', r == 's', r == 'r':
			out = append(out, r)
		case r == '.' && !seenDot:
			seenDot = true
			out = append(out, r)
		}
	}
	return out
}

const hexMaxLen = 7

// HexFilter keeps a single '#' and hex digits, up to seven characters.
func HexFilter(current string, typed []rune) []rune {
	seenHash := strings.ContainsRune(current, '#')
	room := hexMaxLen - len([]rune(current))
	out := make([]rune, 0, len(typed))
	for _, r := range typed {
		if len(out) >= room {
			break
		}
		switch {
		case r == '#' && !seenHash:
			seenHash = true
			out = append(out, r)
		case isHexDigit(r):
			out = append(out, r)
		}
	}
	return out
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
