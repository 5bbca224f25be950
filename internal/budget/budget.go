// Package budget computes derived metrics from a trip snapshot: totals,
// remaining budget, daily allowance, category breakdowns, and trip status.
// Every function is pure; the package never touches storage.
package budget

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"tripkit/internal/model"
)

// TotalExpenses sums all expense amounts on the trip. Zero for no expenses.
func TotalExpenses(t model.Trip) float64 {
	var total float64
	for _, e := range t.Expenses {
		total += e.Amount
	}
	return total
}

// RemainingBudget is budget minus total expenses. Negative when over budget.
func RemainingBudget(t model.Trip) float64 {
	return t.Budget - TotalExpenses(t)
}

// DailyBudget spreads the remaining budget over the trip duration.
// When the duration is zero or negative (bad dates), the remaining budget
// is returned unchanged rather than dividing by zero.
func DailyBudget(t model.Trip) float64 {
	duration := TripDurationDays(t)
	remaining := RemainingBudget(t)
	if duration <= 0 {
		return remaining
	}
	return remaining / float64(duration)
}

// ProgressPercent returns the share of budget consumed, in [0, 100].
// A zero or negative budget reports 0 rather than an error.
func ProgressPercent(t model.Trip) float64 {
	if t.Budget <= 0 {
		return 0
	}
	pct := TotalExpenses(t) / t.Budget * 100
	return math.Min(pct, 100)
}

// IsOverBudget reports whether expenses have exceeded the budget.
func IsOverBudget(t model.Trip) bool {
	return RemainingBudget(t) < 0
}

// ExpensesByCategory totals expense amounts per category. All six buckets
// are always present; unrecognized category strings fold into "other".
func ExpensesByCategory(t model.Trip) map[model.Category]float64 {
	totals := make(map[model.Category]float64, len(model.Categories))
	for _, c := range model.Categories {
		totals[c] = 0
	}
	for _, e := range t.Expenses {
		totals[model.NormalizeCategory(e.Category)] += e.Amount
	}
	return totals
}

// CategoryPercentages returns each category's share of total expenses.
// All buckets map to 0 when there is nothing (or a non-positive total) to share.
func CategoryPercentages(t model.Trip) map[model.Category]float64 {
	totals := ExpensesByCategory(t)
	total := TotalExpenses(t)

	pcts := make(map[model.Category]float64, len(totals))
	if total <= 0 {
		for c := range totals {
			pcts[c] = 0
		}
		return pcts
	}
	for c, amount := range totals {
		pcts[c] = amount / total * 100
	}
	return pcts
}

// DaySpend is one point of a daily spending series.
type DaySpend struct {
	Date   string
	Amount float64
}

// DailySpending builds a zero-filled per-day spending series over the trip's
// date range. Expenses dated outside the range are left out of the series.
func DailySpending(t model.Trip) []DaySpend {
	dates := EnumerateDateRange(t.StartDate, t.EndDate)
	if len(dates) == 0 {
		return nil
	}

	byDate := make(map[string]float64, len(dates))
	for _, d := range dates {
		byDate[d] = 0
	}
	for _, e := range t.Expenses {
		if _, ok := byDate[e.Date]; ok {
			byDate[e.Date] += e.Amount
		}
	}

	series := make([]DaySpend, 0, len(dates))
	for _, d := range dates {
		series = append(series, DaySpend{Date: d, Amount: byDate[d]})
	}
	return series
}

// FormatCurrency renders an amount with its currency symbol. JPY is rounded
// to whole units; every other currency gets exactly two decimals. Thousands
// are comma-grouped and the minus sign leads the symbol: "-$1,234.50".
func FormatCurrency(amount float64, currency string) string {
	symbol := model.CurrencySymbol(currency)

	neg := amount < 0
	abs := math.Abs(amount)

	var formatted string
	if currency == "JPY" {
		formatted = groupThousands(strconv.FormatInt(int64(math.Round(abs)), 10))
	} else {
		s := fmt.Sprintf("%.2f", abs)
		whole, frac, _ := strings.Cut(s, ".")
		formatted = groupThousands(whole) + "." + frac
	}

	if neg {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

// groupThousands inserts comma separators into a digit string.
func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
