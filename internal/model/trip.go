// Package model defines domain types for tripkit trips and expenses.
package model

import "time"

// Trip is a planned journey with a budget, date range, and currency.
// It owns its expenses; deleting a trip removes them with it.
type Trip struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"` // YYYY-MM-DD
	EndDate     string    `json:"endDate"`   // YYYY-MM-DD
	Currency    string    `json:"currency"`
	Budget      float64   `json:"budget"`
	CreatedAt   time.Time `json:"createdAt"`
	Expenses    []Expense `json:"expenses"`
}

// Expense is a single categorized spend entry belonging to exactly one trip.
// Category keeps whatever string was stored; aggregation maps unknown values
// to CategoryOther without rewriting the record.
type Expense struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Date      string    `json:"date"` // YYYY-MM-DD, not checked against the trip range
	CreatedAt time.Time `json:"createdAt"`
}

// Normalize repairs a trip loaded from storage: a missing expenses field
// deserializes as nil and is treated as an empty collection, not an error.
func (t *Trip) Normalize() {
	if t.Expenses == nil {
		t.Expenses = []Expense{}
	}
}

// Clone returns a deep copy of the trip so callers can mutate a snapshot
// without aliasing the stored expense slice.
func (t Trip) Clone() Trip {
	out := t
	out.Expenses = make([]Expense, len(t.Expenses))
	copy(out.Expenses, t.Expenses)
	return out
}
