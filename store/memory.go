package store

import (
	"context"
	"sync"

	"github.com/rushteam/boardrec/core"
)

// MemoryStore 是内存实现的 Store，用于测试/开发/原型。
// 进程重启后数据丢失。
type MemoryStore struct {
	mu       sync.RWMutex
	hashes   map[string]map[string][]byte // hash key -> field -> value
	counters map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		hashes:   make(map[string]map[string][]byte),
		counters: make(map[string]int64),
	}
}

func (m *MemoryStore) Name() string { return "memory" }

func (m *MemoryStore) HGet(ctx context.Context, key, field string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	h, ok := m.hashes[key]
	if !ok {
		return nil, core.ErrStoreNotFound
	}
	v, ok := h[field]
	if !ok {
		return nil, core.ErrStoreNotFound
	}
	return v, nil
}

func (m *MemoryStore) HSet(ctx context.Context, key, field string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.hashes[key]
	if !ok {
		h = make(map[string][]byte)
		m.hashes[key] = h
	}
	// 拷贝一份，避免调用方后续修改影响存储
	h[field] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStore) HSetNX(ctx context.Context, key, field string, value []byte) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.hashes[key]
	if !ok {
		h = make(map[string][]byte)
		m.hashes[key] = h
	}
	if _, exists := h[field]; exists {
		return false, nil
	}
	h[field] = append([]byte(nil), value...)
	return true, nil
}

func (m *MemoryStore) HDel(ctx context.Context, key, field string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h, ok := m.hashes[key]; ok {
		delete(h, field)
	}
	return nil
}

func (m *MemoryStore) HGetAll(ctx context.Context, key string) (map[string][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	h := m.hashes[key]
	result := make(map[string][]byte, len(h))
	for field, v := range h {
		result[field] = v
	}
	return result, nil
}

func (m *MemoryStore) Incr(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counters[key]++
	return m.counters[key], nil
}

func (m *MemoryStore) Close() error {
	return nil
}

var _ core.Store = (*MemoryStore)(nil)
