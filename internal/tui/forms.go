package tui

import (
	"fmt"
	"strconv"
	"time"

	"tripkit/internal/model"

	"github.com/charmbracelet/huh"
)

// tripFormValues collects the new-trip form inputs before they become a Trip.
type tripFormValues struct {
	Name        string
	Destination string
	StartDate   string
	EndDate     string
	Currency    string
	Budget      string
}

// expenseFormValues collects the add-expense form inputs.
type expenseFormValues struct {
	Name     string
	Category string
	Amount   string
	Date     string
}

func validDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validAmount(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("not a number")
	}
	return nil
}

// newTripForm builds the huh form for creating a trip.
func newTripForm(vals *tripFormValues) *huh.Form {
	currencyOpts := make([]huh.Option[string], 0, len(model.CurrencyCodes))
	for _, code := range model.CurrencyCodes {
		label := fmt.Sprintf("%s  %s", code, model.CurrencySymbol(code))
		currencyOpts = append(currencyOpts, huh.NewOption(label, code))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Trip name").
				Value(&vals.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Destination").
				Value(&vals.Destination),
			huh.NewInput().
				Title("Start date").
				Placeholder("YYYY-MM-DD").
				Value(&vals.StartDate).
				Validate(validDate),
			huh.NewInput().
				Title("End date").
				Placeholder("YYYY-MM-DD").
				Value(&vals.EndDate).
				Validate(validDate),
			huh.NewSelect[string]().
				Title("Currency").
				Options(currencyOpts...).
				Value(&vals.Currency),
			huh.NewInput().
				Title("Budget").
				Placeholder("0.00").
				Value(&vals.Budget).
				Validate(validAmount),
		),
	)
}

// newExpenseForm builds the huh form for logging an expense.
func newExpenseForm(vals *expenseFormValues) *huh.Form {
	categoryOpts := make([]huh.Option[string], 0, len(model.Categories))
	for _, c := range model.Categories {
		categoryOpts = append(categoryOpts, huh.NewOption(string(c), string(c)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Expense").
				Value(&vals.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOpts...).
				Value(&vals.Category),
			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Value(&vals.Amount).
				Validate(validAmount),
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&vals.Date).
				Validate(validDate),
		),
	)
}

// newDeleteConfirm builds a confirm form for trip deletion.
func newDeleteConfirm(tripName string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %s?", tripName)).
				Description("All its expenses go with it.").
				Affirmative("Delete").
				Negative("Keep").
				Value(confirmed),
		),
	)
}
