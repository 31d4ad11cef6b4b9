package store

import (
	"context"
	"sort"
	"sync"
)

// Memory is a mutex-guarded in-memory Store. It backs unit tests and local
// development without AWS. GetAll returns rows in ascending ID order.
type Memory[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	lastID int64
}

// NewMemory returns an empty in-memory store.
func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{rows: map[int64]T{}}
}

func (m *Memory[T]) GetAll(ctx context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.rows[id])
	}
	return out, nil
}

func (m *Memory[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (m *Memory[T]) Exists(ctx context.Context, id int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.rows[id]
	return ok, nil
}

func (m *Memory[T]) Insert(ctx context.Context, id int64, row T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; ok {
		return ErrDuplicateKey
	}
	m.rows[id] = row
	if id > m.lastID {
		m.lastID = id
	}
	return nil
}

func (m *Memory[T]) Update(ctx context.Context, id int64, row T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	m.rows[id] = row
	return nil
}

func (m *Memory[T]) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

// AllocateID hands out IDs sequentially, never reusing one already seen by
// Insert. Deletes do not release IDs.
func (m *Memory[T]) AllocateID(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastID++
	return m.lastID, nil
}
