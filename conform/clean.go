package conform

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// Field-level cleaning shared by every conformer. The staging layer stores
// the CSV extracts verbatim, so values can arrive with surrounding quote
// characters, stray whitespace, inconsistent casing and embedded NULL markers.

var nullMarkers = map[string]struct{}{
	"null": {},
	"nil":  {},
	"nan":  {},
	"na":   {},
	"n/a":  {},
	"none": {},
}

// CleanString trims whitespace, strips surrounding single/double quotes and
// maps NULL markers to the empty string.
func CleanString(raw string) string {
	s := strings.TrimSpace(raw)
	for len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
			continue
		}
		break
	}
	if _, ok := nullMarkers[strings.ToLower(s)]; ok {
		return ""
	}
	return s
}

// ProperCase normalizes a free-text label (city names) to proper case:
// "sao paulo" -> "Sao Paulo".
func ProperCase(raw string) string {
	s := strings.ToLower(CleanString(raw))
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	upperNext := true
	for _, r := range s {
		if upperNext && unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		if r == ' ' || r == '-' || r == '.' || r == '/' {
			upperNext = true
		}
		b.WriteRune(r)
	}
	return b.String()
}

// UpperCode normalizes short codes (state abbreviations) to uppercase.
func UpperCode(raw string) string {
	return strings.ToUpper(CleanString(raw))
}

// LowerCode normalizes category-style codes to lowercase.
func LowerCode(raw string) string {
	return strings.ToLower(CleanString(raw))
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTimestamp returns nil for empty or unparseable values; absence of a
// timestamp is data, not an error.
func parseTimestamp(raw string) *time.Time {
	s := CleanString(raw)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func parseInt(raw string) (int, bool) {
	s := CleanString(raw)
	if s == "" {
		return 0, false
	}
	// Sources that round-trip through spreadsheets deliver integers as "2.0".
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
		return int(f), true
	}
	return 0, false
}

// intOrZero applies the business default for optional numeric fields.
func intOrZero(raw string) int {
	n, _ := parseInt(raw)
	return n
}

func parseDecimal(raw string) (decimal.Decimal, bool) {
	s := CleanString(raw)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func parseFloat(raw string) (float64, bool) {
	s := CleanString(raw)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// isZipPrefix reports whether s is exactly five numeric digits.
func isZipPrefix(s string) bool {
	if len(s) != 5 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
