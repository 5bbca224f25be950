package cmd

import (
	"fmt"

	"tripkit/internal/budget"
	"tripkit/internal/cli"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily [trip-id]",
	Short: "Daily spending across the trip's date range",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	trip, err := resolveTrip(l, args)
	if err != nil {
		return err
	}

	series := budget.DailySpending(trip)
	if len(series) == 0 {
		fmt.Printf("\n  %s has no usable date range (%s to %s).\n",
			trip.Name, trip.StartDate, trip.EndDate)
		return nil
	}

	allowance := budget.DailyBudget(trip)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY SPENDING  %s", trip.Name)))
	fmt.Println()

	values := make([]float64, 0, len(series))
	rows := make([][]string, 0, len(series))
	for _, d := range series {
		values = append(values, d.Amount)

		marker := ""
		if allowance > 0 && d.Amount > allowance {
			marker = "over"
		}
		rows = append(rows, []string{
			d.Date,
			cli.FormatAmount(d.Amount, trip.Currency),
			marker,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Spent", ""},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Println("  " + cli.RenderSparkline(values))
	fmt.Println()

	return nil
}
