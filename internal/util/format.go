// Package util holds small text normalizers shared by the controllers.
package util

import (
	"strings"
	"unicode"
)

// stateAbbrevs are kept uppercase when title-casing an address.
var upperTokens = map[string]bool{
	"NY": true, "NJ": true, "PA": true, "CT": true, "MA": true,
	"NE": true, "NW": true, "SE": true, "SW": true,
}

// FormatAddress collapses whitespace and title-cases each word so the same
// street entered twice stores identically. Two-letter state and compass
// tokens stay uppercase.
func FormatAddress(addr string) string {
	fields := strings.Fields(addr)
	for i, f := range fields {
		trimmed := strings.TrimRight(f, ",")
		if upperTokens[strings.ToUpper(trimmed)] {
			fields[i] = strings.ToUpper(f)
			continue
		}
		fields[i] = titleWord(f)
	}
	return strings.Join(fields, " ")
}

// FormatPhone strips everything but digits.
func FormatPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func titleWord(w string) string {
	runes := []rune(strings.ToLower(w))
	for i, r := range runes {
		if unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
			break
		}
	}
	return string(runes)
}
