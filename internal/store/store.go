// Package store contains the document store backends. Every backend keeps one
// collection per entity type with the identifier under its native primary key.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/exemplo/crudmongo-api/internal/document"
)

// ErrNoDocument is returned when no document matches the identifier.
var ErrNoDocument = errors.New("document not found")

// Record pairs a stored document with its identifier.
type Record struct {
	ID  string
	Doc document.Doc
}

// Store is the persistence contract shared by the MongoDB, Postgres and memory backends.
// Replace inserts when id is unknown and replaces the stored document otherwise.
// Delete of an unknown id is a no-op.
type Store interface {
	NewID() string
	FindAll(ctx context.Context, collection string) ([]Record, error)
	FindByID(ctx context.Context, collection, id string) (document.Doc, error)
	Exists(ctx context.Context, collection, id string) (bool, error)
	Replace(ctx context.Context, collection, id string, doc document.Doc) error
	Delete(ctx context.Context, collection, id string) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
