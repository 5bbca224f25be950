// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"

	"tripkit/internal/budget"
)

// FormatAmount renders a monetary amount in the trip's currency.
func FormatAmount(amount float64, currency string) string {
	return budget.FormatCurrency(amount, currency)
}

// FormatPercent formats a 0-100 percentage with one decimal.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDays renders a day count, e.g. 1 -> "1 day", 5 -> "5 days".
func FormatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// Truncate shortens a string to maxLen runes with a trailing ellipsis.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}
