package store

import (
	"testing"
	"time"

	"tripkit/internal/model"
)

func newTestLedger() *Ledger {
	return New(NewMemory(), NewSequenceSource("id"))
}

func makeTrip(l *Ledger, name string, createdAt time.Time) model.Trip {
	return model.Trip{
		ID:        l.NewID(),
		Name:      name,
		StartDate: "2024-03-01",
		EndDate:   "2024-03-05",
		Currency:  "USD",
		Budget:    1000,
		CreatedAt: createdAt,
		Expenses:  []model.Expense{},
	}
}

func makeExpense(l *Ledger, name, category string, amount float64, date string) model.Expense {
	return model.Expense{
		ID:       l.NewID(),
		Name:     name,
		Category: category,
		Amount:   amount,
		Date:     date,
	}
}

func TestAddAndGetTrip(t *testing.T) {
	l := newTestLedger()
	trip := makeTrip(l, "Lisbon", time.Now())

	if err := l.AddTrip(trip); err != nil {
		t.Fatalf("AddTrip: %v", err)
	}

	got, ok, err := l.GetTrip(trip.ID)
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}
	if !ok {
		t.Fatal("GetTrip reported not-found for stored trip")
	}
	if got.Name != "Lisbon" || got.Budget != 1000 {
		t.Fatalf("GetTrip = %+v, mismatched fields", got)
	}
	if got.Expenses == nil {
		t.Fatal("stored trip has nil expenses, want empty slice")
	}
}

func TestGetTripNotFound(t *testing.T) {
	l := newTestLedger()
	_, ok, err := l.GetTrip("missing")
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}
	if ok {
		t.Fatal("GetTrip found a trip in an empty ledger")
	}
}

func TestReplaceTripRoundTrip(t *testing.T) {
	l := newTestLedger()
	trip := makeTrip(l, "Kyoto", time.Now())
	if err := l.AddTrip(trip); err != nil {
		t.Fatalf("AddTrip: %v", err)
	}

	// Mutate a snapshot the way the presentation layer would, then replace.
	snapshot, _, err := l.GetTrip(trip.ID)
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}
	snapshot.Expenses = append(snapshot.Expenses, makeExpense(l, "ramen", "food", 12, "2024-03-02"))

	ok, err := l.ReplaceTrip(trip.ID, snapshot)
	if err != nil {
		t.Fatalf("ReplaceTrip: %v", err)
	}
	if !ok {
		t.Fatal("ReplaceTrip reported not-found")
	}

	got, _, err := l.GetTrip(trip.ID)
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}
	if len(got.Expenses) != 1 || got.Expenses[0].Name != "ramen" {
		t.Fatalf("expenses after replace = %+v, want the new expense", got.Expenses)
	}
	if got.Name != "Kyoto" || got.Budget != 1000 || got.Currency != "USD" {
		t.Fatalf("prior fields changed by replace: %+v", got)
	}
}

func TestReplaceTripNotFound(t *testing.T) {
	l := newTestLedger()
	ok, err := l.ReplaceTrip("missing", makeTrip(l, "Ghost", time.Now()))
	if err != nil {
		t.Fatalf("ReplaceTrip: %v", err)
	}
	if ok {
		t.Fatal("ReplaceTrip succeeded for missing ID")
	}
}

func TestDeleteTripClearsSelection(t *testing.T) {
	l := newTestLedger()
	a := makeTrip(l, "A", time.Now())
	b := makeTrip(l, "B", time.Now())
	if err := l.AddTrip(a); err != nil {
		t.Fatalf("AddTrip: %v", err)
	}
	if err := l.AddTrip(b); err != nil {
		t.Fatalf("AddTrip: %v", err)
	}

	if err := l.SetCurrentTripID(a.ID); err != nil {
		t.Fatalf("SetCurrentTripID: %v", err)
	}

	// Deleting the non-selected trip leaves the pointer alone.
	if ok, err := l.DeleteTrip(b.ID); err != nil || !ok {
		t.Fatalf("DeleteTrip(b) = %v, %v", ok, err)
	}
	current, ok, err := l.CurrentTripID()
	if err != nil || !ok || current != a.ID {
		t.Fatalf("selection after deleting other trip = %q (ok=%v, err=%v), want %q", current, ok, err, a.ID)
	}

	// Deleting the selected trip clears the pointer.
	if ok, err := l.DeleteTrip(a.ID); err != nil || !ok {
		t.Fatalf("DeleteTrip(a) = %v, %v", ok, err)
	}
	_, ok, err = l.CurrentTripID()
	if err != nil {
		t.Fatalf("CurrentTripID: %v", err)
	}
	if ok {
		t.Fatal("selection survived deleting the selected trip")
	}
}

func TestDeleteTripNotFound(t *testing.T) {
	l := newTestLedger()
	if err := l.AddTrip(makeTrip(l, "Keep", time.Now())); err != nil {
		t.Fatalf("AddTrip: %v", err)
	}
	ok, err := l.DeleteTrip("missing")
	if err != nil {
		t.Fatalf("DeleteTrip: %v", err)
	}
	if ok {
		t.Fatal("DeleteTrip reported success for missing ID")
	}
	trips, err := l.ListTrips()
	if err != nil {
		t.Fatalf("ListTrips: %v", err)
	}
	if len(trips) != 1 {
		t.Fatalf("trip count after failed delete = %d, want 1", len(trips))
	}
}

func TestAddExpenseMissingTripLeavesStoreUntouched(t *testing.T) {
	l := newTestLedger()
	trip := makeTrip(l, "Solo", time.Now())
	if err := l.AddTrip(trip); err != nil {
		t.Fatalf("AddTrip: %v", err)
	}

	ok, err := l.AddExpense("missing", makeExpense(l, "taxi", "transportation", 20, "2024-03-01"))
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if ok {
		t.Fatal("AddExpense succeeded for missing trip")
	}

	got, _, err := l.GetTrip(trip.ID)
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}
	if len(got.Expenses) != 0 {
		t.Fatalf("expense leaked into another trip: %+v", got.Expenses)
	}
}

func TestExpenseLifecycle(t *testing.T) {
	l := newTestLedger()
	trip := makeTrip(l, "Rome", time.Now())
	if err := l.AddTrip(trip); err != nil {
		t.Fatalf("AddTrip: %v", err)
	}

	e := makeExpense(l, "museum", "activities", 18, "2024-03-02")
	if ok, err := l.AddExpense(trip.ID, e); err != nil || !ok {
		t.Fatalf("AddExpense = %v, %v", ok, err)
	}

	// Update
	updated := e
	updated.Amount = 25
	if ok, err := l.UpdateExpense(trip.ID, e.ID, updated); err != nil || !ok {
		t.Fatalf("UpdateExpense = %v, %v", ok, err)
	}
	got, _, _ := l.GetTrip(trip.ID)
	if len(got.Expenses) != 1 || got.Expenses[0].Amount != 25 {
		t.Fatalf("expenses after update = %+v", got.Expenses)
	}

	// Update of a missing expense ID
	if ok, err := l.UpdateExpense(trip.ID, "missing", updated); err != nil || ok {
		t.Fatalf("UpdateExpense(missing) = %v, %v, want not-found", ok, err)
	}

	// Delete
	if ok, err := l.DeleteExpense(trip.ID, e.ID); err != nil || !ok {
		t.Fatalf("DeleteExpense = %v, %v", ok, err)
	}
	got, _, _ = l.GetTrip(trip.ID)
	if len(got.Expenses) != 0 {
		t.Fatalf("expenses after delete = %+v, want none", got.Expenses)
	}

	// Delete again is a not-found, not an error
	if ok, err := l.DeleteExpense(trip.ID, e.ID); err != nil || ok {
		t.Fatalf("second DeleteExpense = %v, %v, want not-found", ok, err)
	}
}

func TestListExpensesFiltering(t *testing.T) {
	l := newTestLedger()
	trip := makeTrip(l, "Oslo", time.Now())
	if err := l.AddTrip(trip); err != nil {
		t.Fatalf("AddTrip: %v", err)
	}
	for _, e := range []model.Expense{
		makeExpense(l, "hotel", "accommodation", 120, "2024-03-01"),
		makeExpense(l, "dinner", "food", 40, "2024-03-01"),
		makeExpense(l, "lunch", "food", 22, "2024-03-02"),
	} {
		if ok, err := l.AddExpense(trip.ID, e); err != nil || !ok {
			t.Fatalf("AddExpense = %v, %v", ok, err)
		}
	}

	all, err := l.ListExpenses(trip.ID, CategoryAll)
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all expenses = %d, want 3", len(all))
	}

	food, err := l.ListExpenses(trip.ID, "food")
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(food) != 2 {
		t.Fatalf("food expenses = %d, want 2", len(food))
	}

	none, err := l.ListExpenses(trip.ID, "shopping")
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("shopping expenses = %d, want 0", len(none))
	}

	// Unknown trip yields an empty list, matching the read-path contract.
	missing, err := l.ListExpenses("missing", CategoryAll)
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(missing) != 0 {
		t.Fatalf("expenses of missing trip = %d, want 0", len(missing))
	}
}

func TestMissingExpensesFieldNormalizes(t *testing.T) {
	backend := NewMemory()
	l := New(backend, NewSequenceSource("id"))

	// Simulate a record written without the expenses field.
	raw := `[{"id":"t1","name":"Bare","startDate":"2024-03-01","endDate":"2024-03-02","currency":"USD","budget":100,"createdAt":"2024-01-01T00:00:00Z"}]`
	if err := backend.Put(tripsKey, raw); err != nil {
		t.Fatalf("Put: %v", err)
	}

	trip, ok, err := l.GetTrip("t1")
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}
	if !ok {
		t.Fatal("GetTrip reported not-found")
	}
	if trip.Expenses == nil {
		t.Fatal("missing expenses field decoded as nil, want empty slice")
	}
}

func TestSortTripsByCreation(t *testing.T) {
	l := newTestLedger()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	older := makeTrip(l, "older", base)
	newer := makeTrip(l, "newer", base.AddDate(0, 1, 0))

	trips := []model.Trip{older, newer}

	newest := SortTripsByCreation(trips, SortNewest)
	if newest[0].Name != "newer" {
		t.Fatalf("newest-first order = [%s, %s]", newest[0].Name, newest[1].Name)
	}

	oldest := SortTripsByCreation(trips, SortOldest)
	if oldest[0].Name != "older" {
		t.Fatalf("oldest-first order = [%s, %s]", oldest[0].Name, oldest[1].Name)
	}

	// Input order is untouched.
	if trips[0].Name != "older" {
		t.Fatal("sort mutated its input")
	}
}

func TestSortExpensesByDateUsesDateNotCreatedAt(t *testing.T) {
	early := model.Expense{ID: "a", Date: "2024-03-01", CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	late := model.Expense{ID: "b", Date: "2024-03-09", CreatedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)}

	got := SortExpensesByDate([]model.Expense{early, late}, SortNewest)
	if got[0].ID != "b" {
		t.Fatalf("newest-first by date = [%s, %s], want b first", got[0].ID, got[1].ID)
	}

	got = SortExpensesByDate([]model.Expense{late, early}, SortOldest)
	if got[0].ID != "a" {
		t.Fatalf("oldest-first by date = [%s, %s], want a first", got[0].ID, got[1].ID)
	}
}

func TestSequenceSourceIsDeterministic(t *testing.T) {
	ids := NewSequenceSource("trip")
	if got := ids.NewID(); got != "trip-1" {
		t.Fatalf("first ID = %s, want trip-1", got)
	}
	if got := ids.NewID(); got != "trip-2" {
		t.Fatalf("second ID = %s, want trip-2", got)
	}
}
