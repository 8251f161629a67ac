package pricing

import (
	"strconv"
	"strings"
)

// CurrencySuffix is appended to prices when they are displayed.
const CurrencySuffix = "SR"

// ParsePrice keeps only digits and '.' from raw and parses the longest
// leading decimal number, so "1,234.56 SR" yields 1234.56 and "1.2.3"
// yields 1.2. ok is false when nothing numeric remains.
func ParsePrice(raw string) (value float64, ok bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	stripped := b.String()
	end := 0
	seenDot := false
	for end < len(stripped) {
		if stripped[end] == '.' {
			if seenDot {
				break
			}
			seenDot = true
		}
		end++
	}

	number := stripped[:end]
	if number == "" || number == "." {
		return 0, false
	}

	parsed, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// FormatPrice renders an amount the way the table shows it, e.g. "50 SR".
func FormatPrice(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64) + " " + CurrencySuffix
}
