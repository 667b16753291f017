// Package format provides display formatting for monetary amounts,
// percentages, and durations used by the CLI output and API summaries.
package format

import (
	"fmt"
	"strings"
	"time"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
}

// Currency formats an amount with its currency symbol, abbreviating
// millions as M and thousands as K. Unknown currency codes are used as the
// symbol verbatim.
func Currency(amount float64, currency string, decimalPlaces int) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency
	}

	switch {
	case amount >= 1_000_000:
		return fmt.Sprintf("%s%sM", symbol, withSeparators(amount/1_000_000, decimalPlaces))
	case amount >= 1_000:
		return fmt.Sprintf("%s%sK", symbol, withSeparators(amount/1_000, decimalPlaces))
	default:
		return symbol + withSeparators(amount, decimalPlaces)
	}
}

// Percentage formats a fraction as a percentage string (0.95 -> "95.00%").
func Percentage(value float64, decimalPlaces int) string {
	return fmt.Sprintf("%.*f%%", decimalPlaces, value*100)
}

// Date formats a time as YYYY-MM-DD; the zero time formats the current time.
func Date(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Format("2006-01-02")
}

// Address capitalizes each word of an address.
func Address(address string) string {
	words := strings.Fields(address)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// Number formats a number with thousands separators.
func Number(number float64, decimalPlaces int) string {
	return withSeparators(number, decimalPlaces)
}

// Duration formats a day count as years and months, falling back to days
// under a month.
func Duration(days int) string {
	years := days / 365
	remaining := days % 365
	months := remaining / 30

	switch {
	case years > 0 && months > 0:
		return fmt.Sprintf("%d year(s) %d month(s)", years, months)
	case years > 0:
		return fmt.Sprintf("%d year(s)", years)
	case months > 0:
		return fmt.Sprintf("%d month(s)", months)
	default:
		return fmt.Sprintf("%d day(s)", days)
	}
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}

// withSeparators renders the number with comma-grouped integer digits.
func withSeparators(v float64, decimalPlaces int) string {
	if decimalPlaces < 0 {
		decimalPlaces = 0
	}
	s := fmt.Sprintf("%.*f", decimalPlaces, v)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var sb strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}

	out := sb.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
