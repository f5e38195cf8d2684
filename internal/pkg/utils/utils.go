package utils

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// NotInformed is the display fallback used across the dashboard for
// missing dates, prices and meal plans.
const NotInformed = "Não informado"

// dateLayouts are the wire formats the upstream API has been seen using.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// FormatDateBR formats an upstream date string to DD/MM/YYYY.
// Invalid or empty input yields NotInformed.
func FormatDateBR(value string) string {
	parsed, ok := ParseDate(value)
	if !ok {
		return NotInformed
	}

	return parsed.Format("02/01/2006")
}

// ParseDate parses any supported wire or display date format.
// Times are read as UTC so the day never shifts across timezones.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// ToISODate converts a display date (DD/MM/YYYY) or any supported format
// to YYYY-MM-DD for upstream query parameters. Empty string on failure.
func ToISODate(value string) string {
	parsed, ok := ParseDate(value)
	if !ok {
		return ""
	}

	return parsed.Format("2006-01-02")
}

// FormatBRL formats a value to the Brazilian currency display form.
// Example: 1234.56 -> "R$ 1.234,56"
func FormatBRL(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	cents := int64(math.Round(amount * 100))
	intPart := cents / 100
	fracPart := cents % 100

	var result []byte
	str := strconv.FormatInt(intPart, 10)

	count := 0
	for i := len(str) - 1; i >= 0; i-- {
		result = append([]byte{str[i]}, result...)
		count++
		if count%3 == 0 && i != 0 {
			result = append([]byte{'.'}, result...)
		}
	}

	sign := ""
	if negative {
		sign = "-"
	}

	return "R$ " + sign + string(result) + "," + pad2(fracPart)
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// ParseBRL extracts the numeric value from a formatted price string.
// Example: "R$ 1.234,56" -> 1234.56. Plain decimals ("1234.56") also parse.
// The second return reports whether the input held a parseable value.
func ParseBRL(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	// Plain decimal from the wire, no currency formatting.
	if !strings.ContainsAny(value, "R$,") {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}

	// Strip currency symbol and thousands separators, then the decimal
	// comma becomes a dot.
	var builder strings.Builder
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			builder.WriteRune(r)
		case r == ',':
			builder.WriteRune('.')
		case r == '-':
			builder.WriteRune('-')
		}
	}

	parsed, err := strconv.ParseFloat(builder.String(), 64)
	if err != nil {
		return 0, false
	}

	return parsed, true
}
