// Package components provides reusable TUI widgets for the tripkit dashboard.
package components

import (
	"fmt"

	"tripkit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForBudget picks green/yellow/orange/red from the consumed share of
// budget, as a 0-100 percentage.
func ColorForBudget(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 100:
		return string(t.Red)
	case pct >= 80:
		return string(t.Orange)
	case pct >= 50:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// BudgetBar renders a labeled budget progress bar. pct is 0-100.
func BudgetBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	clamped := pct
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 100 {
		clamped = 100
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForBudget(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForBudget(pct))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " +
		bar.ViewAs(clamped/100) +
		" " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct))
}
