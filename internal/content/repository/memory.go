package repository

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"github.com/portfolio-cms/portfolio-api/internal/content"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory store used for unit tests and for running the
// API without MongoDB. It implements both Collection and Singleton.
// Callers always receive copies, never the stored values.
type MemoryRepo[T any, P content.Record[T]] struct {
	mu    sync.RWMutex
	store map[primitive.ObjectID]*T
}

func NewMemoryRepo[T any, P content.Record[T]]() *MemoryRepo[T, P] {
	return &MemoryRepo[T, P]{store: make(map[primitive.ObjectID]*T)}
}

func (m *MemoryRepo[T, P]) List(ctx context.Context) ([]*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*T, 0, len(m.store))
	for _, d := range m.store {
		out = append(out, clone(d))
	}
	sort.Slice(out, func(i, j int) bool {
		return newer(P(out[i]).Metadata(), P(out[j]).Metadata())
	})
	return out, nil
}

func (m *MemoryRepo[T, P]) Insert(ctx context.Context, rec *T) (*T, error) {
	d := clone(rec)
	meta := P(d).Metadata()
	meta.ID = primitive.NewObjectID()
	meta.CreatedAt = now()
	meta.UpdatedAt = meta.CreatedAt

	m.mu.Lock()
	m.store[meta.ID] = d
	m.mu.Unlock()
	return clone(d), nil
}

func (m *MemoryRepo[T, P]) UpdateByID(ctx context.Context, id string, patch *T) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.store[oid]
	if !ok {
		return nil, ErrNotFound
	}
	d := clone(cur)
	P(d).Apply(patch)
	P(d).Metadata().UpdatedAt = now()
	m.store[oid] = d
	return clone(d), nil
}

func (m *MemoryRepo[T, P]) DeleteByID(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[oid]; !ok {
		return ErrNotFound
	}
	delete(m.store, oid)
	return nil
}

func (m *MemoryRepo[T, P]) FindOne(ctx context.Context) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d := m.first()
	if d == nil {
		return nil, ErrNotFound
	}
	return clone(d), nil
}

func (m *MemoryRepo[T, P]) Upsert(ctx context.Context, patch *T) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var d *T
	if cur := m.first(); cur != nil {
		d = clone(cur)
	} else {
		d = new(T)
		meta := P(d).Metadata()
		meta.ID = primitive.NewObjectID()
		meta.CreatedAt = now()
	}
	P(d).Apply(patch)
	meta := P(d).Metadata()
	meta.UpdatedAt = now()
	m.store[meta.ID] = d
	return clone(d), nil
}

// first returns the oldest stored document, mirroring an unsorted findOne.
// Caller holds the lock.
func (m *MemoryRepo[T, P]) first() *T {
	var oldest *T
	for _, d := range m.store {
		if oldest == nil || newer(P(oldest).Metadata(), P(d).Metadata()) {
			oldest = d
		}
	}
	return oldest
}

// newer orders by creation time, then by id, both descending.
func newer(a, b *content.Meta) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return bytes.Compare(a.ID[:], b.ID[:]) > 0
}

// clone copies the record struct. Field pointers are shared, which is safe
// because Apply swaps pointers instead of writing through them.
func clone[T any](d *T) *T {
	c := *d
	return &c
}
