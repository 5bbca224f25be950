package cmd

import (
	"fmt"
	"time"

	"tripkit/internal/budget"
	"tripkit/internal/cli"
	"tripkit/internal/config"
	"tripkit/internal/model"
	"tripkit/internal/store"

	"github.com/spf13/cobra"
)

var tripsCmd = &cobra.Command{
	Use:   "trips",
	Short: "List trips with budget progress",
	RunE:  runTrips,
}

var (
	tripsSort string

	tripName        string
	tripDestination string
	tripStart       string
	tripEnd         string
	tripCurrency    string
	tripBudget      float64
)

var tripsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new trip",
	RunE:  runTripsAdd,
}

var tripsDeleteCmd = &cobra.Command{
	Use:   "delete <trip-id>",
	Short: "Delete a trip and all its expenses",
	Args:  cobra.ExactArgs(1),
	RunE:  runTripsDelete,
}

var useCmd = &cobra.Command{
	Use:   "use <trip-id>",
	Short: "Select the trip that other commands default to",
	Args:  cobra.ExactArgs(1),
	RunE:  runUse,
}

func init() {
	tripsCmd.Flags().StringVarP(&tripsSort, "sort", "s", "", "Sort by creation: newest or oldest")

	tripsAddCmd.Flags().StringVar(&tripName, "name", "", "Trip name")
	tripsAddCmd.Flags().StringVar(&tripDestination, "destination", "", "Destination")
	tripsAddCmd.Flags().StringVar(&tripStart, "start", "", "Start date (YYYY-MM-DD)")
	tripsAddCmd.Flags().StringVar(&tripEnd, "end", "", "End date (YYYY-MM-DD)")
	tripsAddCmd.Flags().StringVar(&tripCurrency, "currency", "", "Currency code (default from config)")
	tripsAddCmd.Flags().Float64Var(&tripBudget, "budget", 0, "Total budget in major units")
	_ = tripsAddCmd.MarkFlagRequired("name")
	_ = tripsAddCmd.MarkFlagRequired("start")
	_ = tripsAddCmd.MarkFlagRequired("end")

	tripsCmd.AddCommand(tripsAddCmd)
	tripsCmd.AddCommand(tripsDeleteCmd)
	rootCmd.AddCommand(tripsCmd)
	rootCmd.AddCommand(useCmd)
}

func runTrips(_ *cobra.Command, _ []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	trips, err := l.ListTrips()
	if err != nil {
		return err
	}
	if len(trips) == 0 {
		fmt.Println("\n  No trips yet. Create one with `tripkit trips add`.")
		return nil
	}

	cfg, _ := config.Load()
	order := store.SortOrder(cfg.General.TripSort)
	if tripsSort != "" {
		order, err = parseSortOrder(tripsSort)
		if err != nil {
			return err
		}
	}
	trips = store.SortTripsByCreation(trips, order)

	current, _, err := l.CurrentTripID()
	if err != nil {
		return err
	}

	now := time.Now()
	rows := make([][]string, 0, len(trips))
	for _, t := range trips {
		name := cli.Truncate(t.Name, 20)
		if t.ID == current {
			name = "* " + name
		}
		rows = append(rows, []string{
			name,
			shortID(t.ID),
			cli.Truncate(t.Destination, 16),
			budget.DateRangeLabel(t, now),
			string(budget.StatusOn(t, now)),
			cli.FormatAmount(t.Budget, t.Currency),
			cli.RenderBudgetBar(budget.ProgressPercent(t), 12),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TRIPS  (%d)", len(trips))))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "ID", "Destination", "Dates", "Status", "Budget", "Spent"},
		Rows:    rows,
	}))

	return nil
}

func runTripsAdd(_ *cobra.Command, _ []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	cfg, _ := config.Load()
	currency := tripCurrency
	if currency == "" {
		currency = cfg.General.DefaultCurrency
	}

	trip := model.Trip{
		ID:          l.NewID(),
		Name:        tripName,
		Destination: tripDestination,
		StartDate:   tripStart,
		EndDate:     tripEnd,
		Currency:    currency,
		Budget:      tripBudget,
		CreatedAt:   time.Now(),
		Expenses:    []model.Expense{},
	}

	if err := l.AddTrip(trip); err != nil {
		return err
	}

	// First trip becomes the selection so follow-up commands just work.
	if _, ok, err := l.CurrentTripID(); err == nil && !ok {
		_ = l.SetCurrentTripID(trip.ID)
	}

	fmt.Printf("  Created trip %s (%s)\n", trip.Name, trip.ID)
	return nil
}

func runTripsDelete(_ *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	trip, err := findTrip(l, args[0])
	if err != nil {
		return err
	}

	ok, err := l.DeleteTrip(trip.ID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("trip %q not found", args[0])
	}
	fmt.Printf("  Deleted trip %s and its %d expenses\n", trip.Name, len(trip.Expenses))
	return nil
}

func runUse(_ *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	trip, err := findTrip(l, args[0])
	if err != nil {
		return err
	}

	if err := l.SetCurrentTripID(trip.ID); err != nil {
		return err
	}
	fmt.Printf("  Now tracking %s (%s)\n", trip.Name, trip.Destination)
	return nil
}
