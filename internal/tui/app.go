// Package tui provides the interactive Bubble Tea dashboard for tripkit.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tripkit/internal/budget"
	"tripkit/internal/config"
	"tripkit/internal/model"
	"tripkit/internal/store"
	"tripkit/internal/tui/components"
	"tripkit/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// TripsLoadedMsg is sent when the ledger has been (re)read.
type TripsLoadedMsg struct {
	Trips []model.Trip
	Err   error
}

type viewMode int

const (
	viewTrips viewMode = iota
	viewDetail
)

type formKind int

const (
	formNone formKind = iota
	formTrip
	formExpense
	formDelete
)

const minTerminalWidth = 72

// App is the root Bubble Tea model.
type App struct {
	ledger *store.Ledger
	cfg    config.Config

	trips    []model.Trip
	loaded   bool
	loadErr  error
	selected int

	mode   viewMode
	status string

	// Active modal form (new trip, new expense, delete confirm)
	form     *huh.Form
	formKind formKind
	tripVals tripFormValues
	expVals  expenseFormValues
	deleteOK bool

	width  int
	height int
}

// NewApp builds the dashboard over an open ledger.
func NewApp(ledger *store.Ledger, cfg config.Config) App {
	return App{ledger: ledger, cfg: cfg}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.loadTrips()
}

func (a App) loadTrips() tea.Cmd {
	ledger := a.ledger
	order := store.SortOrder(a.cfg.General.TripSort)
	return func() tea.Msg {
		trips, err := ledger.ListTrips()
		if err != nil {
			return TripsLoadedMsg{Err: err}
		}
		return TripsLoadedMsg{Trips: store.SortTripsByCreation(trips, order)}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case TripsLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		if msg.Err == nil {
			a.trips = msg.Trips
			if a.selected >= len(a.trips) {
				a.selected = len(a.trips) - 1
			}
			if a.selected < 0 {
				a.selected = 0
			}
			if len(a.trips) == 0 {
				a.mode = viewTrips
			}
		}
		return a, nil

	case tea.KeyMsg:
		if a.formKind != formNone {
			break // fall through to the form
		}
		return a.handleKey(msg)
	}

	if a.formKind != formNone && a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "j", "down":
		if a.mode == viewTrips && a.selected < len(a.trips)-1 {
			a.selected++
		}
		return a, nil

	case "k", "up":
		if a.mode == viewTrips && a.selected > 0 {
			a.selected--
		}
		return a, nil

	case "enter":
		if a.mode == viewTrips && len(a.trips) > 0 {
			a.mode = viewDetail
			a.status = ""
			// The opened trip becomes the session selection.
			_ = a.ledger.SetCurrentTripID(a.trips[a.selected].ID)
		}
		return a, nil

	case "esc", "b":
		if a.mode == viewDetail {
			a.mode = viewTrips
			a.status = ""
		}
		return a, nil

	case "n":
		a.tripVals = tripFormValues{Currency: a.cfg.General.DefaultCurrency}
		a.form = newTripForm(&a.tripVals)
		a.formKind = formTrip
		return a, a.form.Init()

	case "a":
		if len(a.trips) > 0 {
			a.expVals = expenseFormValues{
				Category: string(model.CategoryOther),
				Date:     time.Now().Format("2006-01-02"),
			}
			a.form = newExpenseForm(&a.expVals)
			a.formKind = formExpense
			return a, a.form.Init()
		}
		return a, nil

	case "d":
		if len(a.trips) > 0 {
			a.deleteOK = false
			a.form = newDeleteConfirm(a.trips[a.selected].Name, &a.deleteOK)
			a.formKind = formDelete
			return a, a.form.Init()
		}
		return a, nil

	case "r":
		return a, a.loadTrips()
	}

	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		kind := a.formKind
		a.form = nil
		a.formKind = formNone
		return a.completeForm(kind)
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	return a, cmd
}

func (a App) completeForm(kind formKind) (tea.Model, tea.Cmd) {
	switch kind {
	case formTrip:
		amount, _ := strconv.ParseFloat(a.tripVals.Budget, 64)
		trip := model.Trip{
			ID:          a.ledger.NewID(),
			Name:        a.tripVals.Name,
			Destination: a.tripVals.Destination,
			StartDate:   a.tripVals.StartDate,
			EndDate:     a.tripVals.EndDate,
			Currency:    a.tripVals.Currency,
			Budget:      amount,
			CreatedAt:   time.Now(),
			Expenses:    []model.Expense{},
		}
		if err := a.ledger.AddTrip(trip); err != nil {
			a.status = "save failed: " + err.Error()
			return a, nil
		}
		a.status = "Created " + trip.Name

	case formExpense:
		amount, _ := strconv.ParseFloat(a.expVals.Amount, 64)
		expense := model.Expense{
			ID:        a.ledger.NewID(),
			Name:      a.expVals.Name,
			Category:  a.expVals.Category,
			Amount:    amount,
			Date:      a.expVals.Date,
			CreatedAt: time.Now(),
		}
		if _, err := a.ledger.AddExpense(a.trips[a.selected].ID, expense); err != nil {
			a.status = "save failed: " + err.Error()
			return a, nil
		}
		a.status = "Logged " + expense.Name

	case formDelete:
		if a.deleteOK {
			name := a.trips[a.selected].Name
			if _, err := a.ledger.DeleteTrip(a.trips[a.selected].ID); err != nil {
				a.status = "delete failed: " + err.Error()
				return a, nil
			}
			a.mode = viewTrips
			a.status = "Deleted " + name
		}
	}

	return a, a.loadTrips()
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d).\n", a.width, minTerminalWidth)
	}
	if !a.loaded {
		return "\n  Loading ledger..."
	}
	if a.loadErr != nil {
		return fmt.Sprintf("\n  Ledger error: %v\n\n  q to quit", a.loadErr)
	}
	if a.form != nil {
		return a.form.View()
	}

	if a.mode == viewDetail && len(a.trips) > 0 {
		return a.viewDetail()
	}
	return a.viewTrips()
}

func (a App) viewTrips() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  Trips"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  (%d)", len(a.trips))))
	b.WriteString("\n\n")

	if len(a.trips) == 0 {
		b.WriteString(mutedStyle.Render("  No trips yet. Press n to plan one."))
		b.WriteString("\n")
	}

	now := time.Now()
	for i, trip := range a.trips {
		cursor := "  "
		nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		if i == a.selected {
			cursor = selStyle.Render("▸ ")
			nameStyle = nameStyle.Bold(true)
		}

		line := fmt.Sprintf("%s%s  %s  %s  %s",
			cursor,
			nameStyle.Render(fmt.Sprintf("%-20s", truncate(trip.Name, 20))),
			mutedStyle.Render(fmt.Sprintf("%-14s", truncate(trip.Destination, 14))),
			dimStyle.Render(fmt.Sprintf("%-16s", budget.DateRangeLabel(trip, now))),
			a.statusBadge(budget.StatusOn(trip, now)),
		)
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString("    ")
		b.WriteString(components.BudgetBar(
			budget.FormatCurrency(trip.Budget, trip.Currency),
			budget.ProgressPercent(trip), 12, 24))
		b.WriteString("\n\n")
	}

	if a.status != "" {
		b.WriteString(mutedStyle.Render("  " + a.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  enter open · n new trip · a expense · d delete · r reload · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (a App) viewDetail() string {
	t := theme.Active
	trip := a.trips[a.selected]
	now := time.Now()

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	width := a.width - 4
	if width > 100 {
		width = 100
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  " + trip.Name))
	if trip.Destination != "" {
		b.WriteString(mutedStyle.Render("  " + trip.Destination))
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %s · %s · %s",
		budget.DateRangeLabel(trip, now),
		formatDays(budget.TripDurationDays(trip)),
		budget.StatusOn(trip, now),
	)))
	b.WriteString("\n\n")

	cards := []components.Metric{
		{Label: "Budget", Value: budget.FormatCurrency(trip.Budget, trip.Currency)},
		{Label: "Spent", Value: budget.FormatCurrency(budget.TotalExpenses(trip), trip.Currency)},
		{Label: "Remaining", Value: budget.FormatCurrency(budget.RemainingBudget(trip), trip.Currency)},
		{Label: "Daily", Value: budget.FormatCurrency(budget.DailyBudget(trip), trip.Currency)},
	}
	b.WriteString(indent(components.MetricCards(cards, width), 2))
	b.WriteString("\n\n  ")
	b.WriteString(components.BudgetBar("Budget used", budget.ProgressPercent(trip), 12, width-22))
	b.WriteString("\n")

	if budget.IsOverBudget(trip) {
		over := -budget.RemainingBudget(trip)
		overStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
		b.WriteString(overStyle.Render(fmt.Sprintf("  Over budget by %s",
			budget.FormatCurrency(over, trip.Currency))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Category breakdown
	byCategory := budget.ExpensesByCategory(trip)
	rows := make([]components.HBarRow, 0, len(model.Categories))
	for _, c := range model.Categories {
		rows = append(rows, components.HBarRow{
			Label:  string(c),
			Value:  byCategory[c],
			Amount: budget.FormatCurrency(byCategory[c], trip.Currency),
		})
	}
	b.WriteString(indent(components.ContentCard("By category",
		components.HBarChart(rows, width-6), width), 2))
	b.WriteString("\n")

	// Daily spending sparkline
	series := budget.DailySpending(trip)
	if len(series) > 0 {
		values := make([]float64, 0, len(series))
		for _, d := range series {
			values = append(values, d.Amount)
		}
		body := components.Sparkline(values, t.Cyan) + "\n" +
			dimStyle.Render(fmt.Sprintf("%s to %s", trip.StartDate, trip.EndDate))
		b.WriteString(indent(components.ContentCard("Daily spending", body, width), 2))
		b.WriteString("\n")
	}

	// Most recent expenses
	expenses := store.SortExpensesByDate(trip.Expenses, store.SortNewest)
	if len(expenses) > 0 {
		limit := 6
		if len(expenses) < limit {
			limit = len(expenses)
		}
		var lines []string
		for _, e := range expenses[:limit] {
			lines = append(lines, fmt.Sprintf("%s  %-24s %-14s %s",
				dimStyle.Render(e.Date),
				truncate(e.Name, 24),
				mutedStyle.Render(e.Category),
				budget.FormatCurrency(e.Amount, trip.Currency)))
		}
		b.WriteString(indent(components.ContentCard(
			fmt.Sprintf("Recent expenses (%d total)", len(trip.Expenses)),
			strings.Join(lines, "\n"), width), 2))
		b.WriteString("\n")
	}

	if a.status != "" {
		b.WriteString(mutedStyle.Render("  " + a.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  a expense · d delete trip · esc back · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (a App) statusBadge(s budget.Status) string {
	t := theme.Active
	switch s {
	case budget.StatusOngoing:
		return lipgloss.NewStyle().Foreground(t.Green).Render("ongoing")
	case budget.StatusUpcoming:
		return lipgloss.NewStyle().Foreground(t.Cyan).Render("upcoming")
	default:
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("past")
	}
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}

func formatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// indent prefixes every line of a multi-line block.
func indent(block string, n int) string {
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(block, "\n", "\n"+pad)
}
