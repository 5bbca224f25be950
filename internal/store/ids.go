package store

import (
	"fmt"

	"github.com/google/uuid"
)

// IDSource mints identifiers for new trips and expenses. The ledger never
// checks minted IDs for collisions; sources must not repeat within a data set.
type IDSource interface {
	NewID() string
}

// UUIDSource is the default IDSource, producing random UUID strings.
type UUIDSource struct{}

func (UUIDSource) NewID() string {
	return uuid.NewString()
}

// SequenceSource produces prefix-1, prefix-2, ... for deterministic tests.
type SequenceSource struct {
	prefix string
	n      int
}

// NewSequenceSource returns a SequenceSource with the given prefix.
func NewSequenceSource(prefix string) *SequenceSource {
	return &SequenceSource{prefix: prefix}
}

func (s *SequenceSource) NewID() string {
	s.n++
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}
