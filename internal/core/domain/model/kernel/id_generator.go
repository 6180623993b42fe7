package kernel

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for newly created domain objects.
// Aggregates that generate child identities (e.g. an order creating its line
// items) hold an IDGenerator instead of hard-coding a generation scheme, so
// tests and demos can substitute a deterministic source.
type IDGenerator interface {
	// NewID returns a fresh, collision-resistant identifier.
	NewID() UUID
}

type randomIDGenerator struct{}

// NewRandomIDGenerator returns the production generator backed by random
// version 4 UUIDs.
func NewRandomIDGenerator() IDGenerator {
	return randomIDGenerator{}
}

func (randomIDGenerator) NewID() UUID {
	return NewUUID()
}

// SequentialIDGenerator yields a deterministic, strictly increasing sequence
// of identifiers. Intended for tests and demos where stable identifiers
// matter; it is not safe for concurrent use.
type SequentialIDGenerator struct {
	counter uint64
}

// NewSequentialIDGenerator creates a generator whose first identifier encodes
// the counter value 1.
func NewSequentialIDGenerator() *SequentialIDGenerator {
	return &SequentialIDGenerator{}
}

// NewID returns the next identifier in the sequence.
func (g *SequentialIDGenerator) NewID() UUID {
	g.counter++

	var b [16]byte
	binary.BigEndian.PutUint64(b[8:], g.counter)
	id, _ := uuid.FromBytes(b[:])

	return UUID{id: id}
}
