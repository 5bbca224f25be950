// Package cmd implements the tripkit CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"tripkit/internal/config"
	"tripkit/internal/model"
	"tripkit/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDB    string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "tripkit",
	Short: "Travel budget tracker",
	Long:  "Track trip budgets and expenses: remaining budget, daily allowance, and category breakdowns.",
	RunE:  runTrips,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Ledger database path (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// openLedger opens the SQLite-backed ledger at the configured path.
// The --db flag wins over the config file.
func openLedger() (*store.Ledger, error) {
	cfg, _ := config.Load()

	path := flagDB
	if path == "" {
		path = config.DBPath(cfg)
	}

	backend, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	return store.New(backend, nil), nil
}

// resolveTrip returns the trip named by the first positional argument, or
// the current selection when no argument is given.
func resolveTrip(l *store.Ledger, args []string) (model.Trip, error) {
	if len(args) > 0 {
		return findTrip(l, args[0])
	}

	current, ok, err := l.CurrentTripID()
	if err != nil {
		return model.Trip{}, err
	}
	if !ok {
		return model.Trip{}, errors.New("no trip selected: pass a trip ID or run `tripkit use <trip-id>`")
	}

	trip, ok, err := l.GetTrip(current)
	if err != nil {
		return model.Trip{}, err
	}
	if !ok {
		return model.Trip{}, fmt.Errorf("selected trip %q no longer exists", current)
	}
	return trip, nil
}

// findTrip looks a trip up by exact ID, then by unique ID prefix so the
// short IDs shown in listings work on the command line.
func findTrip(l *store.Ledger, id string) (model.Trip, error) {
	trip, ok, err := l.GetTrip(id)
	if err != nil {
		return model.Trip{}, err
	}
	if ok {
		return trip, nil
	}

	trips, err := l.ListTrips()
	if err != nil {
		return model.Trip{}, err
	}
	var matches []model.Trip
	for _, t := range trips {
		if strings.HasPrefix(t.ID, id) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Trip{}, fmt.Errorf("trip %q not found", id)
	default:
		return model.Trip{}, fmt.Errorf("trip ID prefix %q is ambiguous (%d matches)", id, len(matches))
	}
}

// shortID truncates an ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// parseSortOrder validates a --sort flag value.
func parseSortOrder(s string) (store.SortOrder, error) {
	switch store.SortOrder(s) {
	case store.SortNewest, store.SortOldest:
		return store.SortOrder(s), nil
	default:
		return "", fmt.Errorf("invalid sort order %q (want newest or oldest)", s)
	}
}
