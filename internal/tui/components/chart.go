package components

import (
	"fmt"
	"strings"

	"tripkit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		if v < 0 {
			v = 0
		}
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// HBarRow is one row of a horizontal bar chart.
type HBarRow struct {
	Label  string
	Value  float64
	Amount string // pre-formatted value shown after the bar
}

// HBarChart renders labeled horizontal bars scaled to the largest value.
// Rows with zero value render an empty track so the category set stays visible.
func HBarChart(rows []HBarRow, width int) string {
	if len(rows) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	amountW := 0
	for _, r := range rows {
		if lipgloss.Width(r.Label) > labelW {
			labelW = lipgloss.Width(r.Label)
		}
		if lipgloss.Width(r.Amount) > amountW {
			amountW = lipgloss.Width(r.Amount)
		}
	}

	peak := 0.0
	for _, r := range rows {
		if r.Value > peak {
			peak = r.Value
		}
	}
	if peak <= 0 {
		peak = 1
	}

	barW := width - labelW - amountW - 4
	if barW < 8 {
		barW = 8
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	trackStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for i, r := range rows {
		v := r.Value
		if v < 0 {
			v = 0
		}
		filled := int(v / peak * float64(barW))
		if filled > barW {
			filled = barW
		}

		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, r.Label)))
		b.WriteString("  ")
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(trackStyle.Render(strings.Repeat("░", barW-filled)))
		b.WriteString("  ")
		b.WriteString(amountStyle.Render(fmt.Sprintf("%*s", amountW, r.Amount)))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
