// Package store persists the trip ledger in a durable key-value backend
// and exposes the CRUD operations the rest of tripkit is built on.
package store

// Storage keys. The whole trip set lives as one JSON array under tripsKey;
// the session's selected trip ID sits under currentTripKey.
const (
	tripsKey       = "travelBudgetTrips"
	currentTripKey = "travelBudgetCurrentTrip"
)

// Backend is a durable key-value store. Get reports presence explicitly so a
// missing key is a normal outcome, not an error. Implementations are not
// required to be safe for concurrent writers; tripkit mutates from a single
// command or event loop and concurrent external writes are last-writer-wins.
type Backend interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
	Delete(key string) error
	Close() error
}
