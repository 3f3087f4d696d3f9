package report

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxCellRunes is the longest text a table cell shows before it is cut.
const MaxCellRunes = 100

// CutText shortens s to MaxCellRunes runes followed by "...".
func CutText(s string) string {
	if utf8.RuneCountInString(s) <= MaxCellRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:MaxCellRunes]) + "..."
}

// FormatAmount drops the fractional part of a decimal string and groups digits
// in threes: "1234567.8" becomes "1 234 567".
func FormatAmount(s string) string {
	whole, _, _ := strings.Cut(s, ".")
	return groupDigits(whole)
}

// FormatNumber groups the digits of n in threes.
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if sign, digits, ok := strings.Cut(s, "-"); ok && sign == "" {
		return "-" + groupDigits(digits)
	}
	return groupDigits(s)
}

func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
