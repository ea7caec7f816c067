// Package session stores named snapshots of serialized graph documents, so
// work in progress can be stashed and recalled without touching the project's
// shader files.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a snapshot does not exist.
var ErrNotFound = errors.New("snapshot not found")

// Snapshot is one saved graph document.
type Snapshot struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	SavedAt time.Time `json:"saved_at"`
	// Data is the serialized graph document.
	Data []byte `json:"data"`
}

// Store is the interface for snapshot storage backends.
type Store interface {
	// Get retrieves a snapshot by id. It returns ErrNotFound when absent.
	Get(ctx context.Context, id uuid.UUID) (*Snapshot, error)

	// Put stores a snapshot.
	Put(ctx context.Context, snap *Snapshot) error

	// Delete removes a snapshot. Deleting an absent snapshot is not an
	// error.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all snapshots without their data, newest first.
	List(ctx context.Context) ([]*Snapshot, error)

	// Close releases backend resources.
	Close() error
}

// New creates a snapshot of data under the given name.
func New(name string, data []byte) *Snapshot {
	return &Snapshot{
		ID:      uuid.New(),
		Name:    name,
		SavedAt: time.Now(),
		Data:    data,
	}
}
