package store

import (
	"encoding/json"
	"fmt"
	"sort"

	"tripkit/internal/model"
)

// SortOrder selects sort direction for trip and expense listings.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// CategoryAll is the listExpenses filter value that matches every category.
const CategoryAll = "all"

// Ledger owns the durable trip set and the session's current-trip pointer.
// Every mutating operation rewrites the full trip set before returning, so
// callers never observe a partial write. Not-found outcomes are reported as
// a boolean; errors are reserved for backend failures.
type Ledger struct {
	backend Backend
	ids     IDSource
}

// New returns a Ledger over the given backend. A nil IDSource defaults to
// random UUIDs.
func New(backend Backend, ids IDSource) *Ledger {
	if ids == nil {
		ids = UUIDSource{}
	}
	return &Ledger{backend: backend, ids: ids}
}

// NewID mints an identifier for a new trip or expense.
func (l *Ledger) NewID() string {
	return l.ids.NewID()
}

// Close closes the underlying backend.
func (l *Ledger) Close() error {
	return l.backend.Close()
}

// ListTrips returns all stored trips in unspecified order.
func (l *Ledger) ListTrips() ([]model.Trip, error) {
	return l.loadTrips()
}

// AddTrip appends a trip to the store. The caller is responsible for ID
// uniqueness; duplicates are not detected here.
func (l *Ledger) AddTrip(t model.Trip) error {
	trips, err := l.loadTrips()
	if err != nil {
		return err
	}
	t.Normalize()
	trips = append(trips, t)
	return l.saveTrips(trips)
}

// GetTrip looks up a trip by ID.
func (l *Ledger) GetTrip(id string) (model.Trip, bool, error) {
	trips, err := l.loadTrips()
	if err != nil {
		return model.Trip{}, false, err
	}
	for _, t := range trips {
		if t.ID == id {
			return t, true, nil
		}
	}
	return model.Trip{}, false, nil
}

// ReplaceTrip overwrites the trip with the given ID. Reports false, without
// writing, when no trip matches.
func (l *Ledger) ReplaceTrip(id string, updated model.Trip) (bool, error) {
	trips, err := l.loadTrips()
	if err != nil {
		return false, err
	}
	for i, t := range trips {
		if t.ID == id {
			updated.Normalize()
			trips[i] = updated
			if err := l.saveTrips(trips); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// DeleteTrip removes a trip and all its expenses. When the deleted trip is
// the current selection, the pointer is cleared as well.
func (l *Ledger) DeleteTrip(id string) (bool, error) {
	trips, err := l.loadTrips()
	if err != nil {
		return false, err
	}

	kept := trips[:0]
	for _, t := range trips {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(trips) {
		return false, nil
	}
	if err := l.saveTrips(kept); err != nil {
		return false, err
	}

	current, ok, err := l.CurrentTripID()
	if err != nil {
		return false, err
	}
	if ok && current == id {
		if err := l.ClearCurrentTripID(); err != nil {
			return false, err
		}
	}
	return true, nil
}

// AddExpense appends an expense to the trip's collection. Reports false when
// the trip does not exist; the expense itself is never validated.
func (l *Ledger) AddExpense(tripID string, e model.Expense) (bool, error) {
	trip, ok, err := l.GetTrip(tripID)
	if err != nil || !ok {
		return false, err
	}
	trip.Expenses = append(trip.Expenses, e)
	return l.ReplaceTrip(tripID, trip)
}

// UpdateExpense replaces the expense with the given ID inside the trip.
// Reports false when either the trip or the expense is absent.
func (l *Ledger) UpdateExpense(tripID, expenseID string, updated model.Expense) (bool, error) {
	trip, ok, err := l.GetTrip(tripID)
	if err != nil || !ok {
		return false, err
	}
	for i, e := range trip.Expenses {
		if e.ID == expenseID {
			trip.Expenses[i] = updated
			return l.ReplaceTrip(tripID, trip)
		}
	}
	return false, nil
}

// DeleteExpense removes the expense with the given ID from the trip.
func (l *Ledger) DeleteExpense(tripID, expenseID string) (bool, error) {
	trip, ok, err := l.GetTrip(tripID)
	if err != nil || !ok {
		return false, err
	}

	kept := trip.Expenses[:0]
	for _, e := range trip.Expenses {
		if e.ID != expenseID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(trip.Expenses) {
		return false, nil
	}
	trip.Expenses = kept
	return l.ReplaceTrip(tripID, trip)
}

// ListExpenses returns the trip's expenses, optionally narrowed to a single
// category. An unknown trip ID yields an empty list. The filter matches the
// stored category string exactly; CategoryAll disables it.
func (l *Ledger) ListExpenses(tripID, category string) ([]model.Expense, error) {
	trip, ok, err := l.GetTrip(tripID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Expense{}, nil
	}
	if category == CategoryAll || category == "" {
		return trip.Expenses, nil
	}

	filtered := make([]model.Expense, 0, len(trip.Expenses))
	for _, e := range trip.Expenses {
		if e.Category == category {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// SetCurrentTripID records the session's selected trip.
func (l *Ledger) SetCurrentTripID(id string) error {
	return l.backend.Put(currentTripKey, id)
}

// CurrentTripID returns the selected trip ID, if any.
func (l *Ledger) CurrentTripID() (string, bool, error) {
	return l.backend.Get(currentTripKey)
}

// ClearCurrentTripID drops the selection.
func (l *Ledger) ClearCurrentTripID() error {
	return l.backend.Delete(currentTripKey)
}

func (l *Ledger) loadTrips() ([]model.Trip, error) {
	raw, ok, err := l.backend.Get(tripsKey)
	if err != nil {
		return nil, fmt.Errorf("reading trips: %w", err)
	}
	if !ok {
		return []model.Trip{}, nil
	}

	var trips []model.Trip
	if err := json.Unmarshal([]byte(raw), &trips); err != nil {
		return nil, fmt.Errorf("decoding trips: %w", err)
	}
	for i := range trips {
		trips[i].Normalize()
	}
	return trips, nil
}

func (l *Ledger) saveTrips(trips []model.Trip) error {
	data, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("encoding trips: %w", err)
	}
	if err := l.backend.Put(tripsKey, string(data)); err != nil {
		return fmt.Errorf("writing trips: %w", err)
	}
	return nil
}

// SortTripsByCreation returns a copy of trips stably sorted by CreatedAt.
func SortTripsByCreation(trips []model.Trip, order SortOrder) []model.Trip {
	sorted := make([]model.Trip, len(trips))
	copy(sorted, trips)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortOldest {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// SortExpensesByDate returns a copy of expenses stably sorted by their date
// field (not CreatedAt). ISO dates order lexically, so string comparison is
// chronological for well-formed records.
func SortExpensesByDate(expenses []model.Expense, order SortOrder) []model.Expense {
	sorted := make([]model.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortOldest {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}
