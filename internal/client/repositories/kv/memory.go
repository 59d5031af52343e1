package kv

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore is an in-process Repository and Transactor. Transactions
// stage writes on a copy of the data and publish it only on success.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return memoryView{data: m.data}.Get(ctx, key)
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return memoryView{data: m.data}.Set(ctx, key, value)
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return memoryView{data: m.data}.Delete(ctx, key)
}

// WithinTx holds the store lock for the whole of fn, so fn must not call
// back into m directly; it should use the repo it is given.
func (m *MemoryStore) WithinTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	staged := maps.Clone(m.data)
	if err := fn(ctx, memoryView{data: staged}); err != nil {
		return err
	}
	m.data = staged
	return nil
}

// memoryView is an unlocked Repository over a map; callers hold the lock.
type memoryView struct {
	data map[string][]byte
}

func (v memoryView) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := v.data[key]
	if !ok {
		return nil, nil
	}
	return cloneBytes(value), nil
}

func (v memoryView) Set(_ context.Context, key string, value []byte) error {
	v.data[key] = cloneBytes(value)
	return nil
}

func (v memoryView) Delete(_ context.Context, key string) error {
	delete(v.data, key)
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append(make([]byte, 0, len(b)), b...)
}
