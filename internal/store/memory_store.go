package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/exemplo/crudmongo-api/internal/document"
)

type memoryCollection struct {
	docs  map[string]document.Doc
	order []string
}

// MemoryStore keeps collections in process memory. Documents are listed in insertion order.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memoryCollection)}
}

func (s *MemoryStore) NewID() string {
	return uuid.NewString()
}

func (s *MemoryStore) FindAll(ctx context.Context, collection string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	coll, ok := s.collections[collection]
	if !ok {
		return []Record{}, nil
	}
	records := make([]Record, 0, len(coll.order))
	for _, id := range coll.order {
		records = append(records, Record{ID: id, Doc: coll.docs[id].Clone()})
	}
	return records, nil
}

func (s *MemoryStore) FindByID(ctx context.Context, collection, id string) (document.Doc, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if coll, ok := s.collections[collection]; ok {
		if doc, ok := coll.docs[id]; ok {
			return doc.Clone(), nil
		}
	}
	return nil, ErrNoDocument
}

func (s *MemoryStore) Exists(ctx context.Context, collection, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	coll, ok := s.collections[collection]
	if !ok {
		return false, nil
	}
	_, ok = coll.docs[id]
	return ok, nil
}

func (s *MemoryStore) Replace(ctx context.Context, collection, id string, doc document.Doc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[collection]
	if !ok {
		coll = &memoryCollection{docs: make(map[string]document.Doc)}
		s.collections[collection] = coll
	}
	if _, exists := coll.docs[id]; !exists {
		coll.order = append(coll.order, id)
	}
	coll.docs[id] = doc.Clone()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[collection]
	if !ok {
		return nil
	}
	if _, exists := coll.docs[id]; !exists {
		return nil
	}
	delete(coll.docs, id)
	for i, existing := range coll.order {
		if existing == id {
			coll.order = append(coll.order[:i], coll.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) Close(context.Context) error {
	return nil
}
