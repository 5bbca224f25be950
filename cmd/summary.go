package cmd

import (
	"fmt"
	"time"

	"tripkit/internal/budget"
	"tripkit/internal/cli"
	"tripkit/internal/model"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [trip-id]",
	Short: "Budget summary for a trip",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	trip, err := resolveTrip(l, args)
	if err != nil {
		return err
	}

	now := time.Now()
	spent := budget.TotalExpenses(trip)
	remaining := budget.RemainingBudget(trip)
	progress := budget.ProgressPercent(trip)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  ·  %s", trip.Name, trip.Destination)))
	fmt.Println()

	rows := [][]string{
		{"Dates", budget.DateRangeLabel(trip, now)},
		{"Duration", cli.FormatDays(budget.TripDurationDays(trip))},
		{"Status", string(budget.StatusOn(trip, now))},
		{"---"},
		{"Budget", cli.FormatAmount(trip.Budget, trip.Currency)},
		{"Spent", cli.FormatAmount(spent, trip.Currency)},
		{"Remaining", cli.FormatAmount(remaining, trip.Currency)},
		{"Daily allowance", cli.FormatAmount(budget.DailyBudget(trip), trip.Currency)},
		{"---"},
		{"Progress", cli.RenderBudgetBar(progress, 20)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if budget.IsOverBudget(trip) {
		fmt.Println()
		fmt.Println(cli.RenderOverBudget(cli.FormatAmount(-remaining, trip.Currency)))
	}

	// Category breakdown, skipping empty buckets in the table but keeping
	// the fixed ordering for the ones that have spend.
	byCategory := budget.ExpensesByCategory(trip)
	pcts := budget.CategoryPercentages(trip)

	catRows := make([][]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		if byCategory[c] == 0 {
			continue
		}
		catRows = append(catRows, []string{
			string(c),
			cli.FormatAmount(byCategory[c], trip.Currency),
			cli.FormatPercent(pcts[c]),
		})
	}
	if len(catRows) > 0 {
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "By category",
			Headers: []string{"Category", "Amount", "Share"},
			Rows:    catRows,
		}))
	}

	return nil
}
