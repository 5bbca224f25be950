package store

import (
	"path/filepath"
	"testing"
	"time"

	"tripkit/internal/model"
)

func openTestDB(t *testing.T) (*SQLite, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return db, path
}

func TestSQLitePutGetDelete(t *testing.T) {
	db, _ := openTestDB(t)
	defer db.Close()

	if _, ok, err := db.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v, err=%v, want absent", ok, err)
	}

	if err := db.Put("k", "v1"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if v, ok, err := db.Get("k"); err != nil || !ok || v != "v1" {
		t.Fatalf("Get = %q, ok=%v, err=%v, want v1", v, ok, err)
	}

	// Put replaces
	if err := db.Put("k", "v2"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if v, _, _ := db.Get("k"); v != "v2" {
		t.Fatalf("Get after replace = %q, want v2", v)
	}

	if err := db.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := db.Get("k"); ok {
		t.Fatal("key survived delete")
	}

	// Deleting an absent key is fine
	if err := db.Delete("k"); err != nil {
		t.Fatalf("Delete(absent): %v", err)
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	db, path := openTestDB(t)

	l := New(db, NewSequenceSource("id"))
	trip := model.Trip{
		ID:        l.NewID(),
		Name:      "Porto",
		StartDate: "2024-09-01",
		EndDate:   "2024-09-07",
		Currency:  "EUR",
		Budget:    900,
		CreatedAt: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		Expenses:  []model.Expense{},
	}
	if err := l.AddTrip(trip); err != nil {
		t.Fatalf("AddTrip: %v", err)
	}
	if err := l.SetCurrentTripID(trip.ID); err != nil {
		t.Fatalf("SetCurrentTripID: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	l2 := New(reopened, nil)
	defer l2.Close()

	got, ok, err := l2.GetTrip(trip.ID)
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}
	if !ok || got.Name != "Porto" || got.Currency != "EUR" {
		t.Fatalf("trip after reopen = %+v (ok=%v)", got, ok)
	}

	current, ok, err := l2.CurrentTripID()
	if err != nil || !ok || current != trip.ID {
		t.Fatalf("selection after reopen = %q (ok=%v, err=%v), want %q", current, ok, err, trip.ID)
	}
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dirs", "ledger.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open with missing parents: %v", err)
	}
	defer db.Close()

	if err := db.Put("k", "v"); err != nil {
		t.Fatalf("Put: %v", err)
	}
}
