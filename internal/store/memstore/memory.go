// Package memstore provides an in-memory implementation of store.Gateway.
// This implementation is designed for fast unit testing and does not persist data.
package memstore

import (
	"fmt"
	"sync"

	"github.com/yiblet/quotegen/internal/store"
)

var _ store.Gateway = (*MemoryGateway)(nil)

// MemoryGateway is an in-memory implementation of store.Gateway.
// It uses a map for storage and is thread-safe via a mutex.
type MemoryGateway struct {
	mu      sync.RWMutex
	data    map[string]string
	saveErr error
	saves   int
}

// New creates a new in-memory gateway.
func New() *MemoryGateway {
	return &MemoryGateway{
		data: make(map[string]string),
	}
}

// NewWithData creates an in-memory gateway pre-populated with data.
func NewWithData(data map[string]string) *MemoryGateway {
	m := New()
	for k, v := range data {
		m.data[k] = v
	}
	return m
}

// Load retrieves a value by key.
func (m *MemoryGateway) Load(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	return value, ok, nil
}

// Save stores a value, or returns the injected failure set by FailSaves.
func (m *MemoryGateway) Save(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return fmt.Errorf("failed to save %s: %w", key, m.saveErr)
	}

	m.data[key] = value
	m.saves++
	return nil
}

// Close releases resources (no-op for memory store).
func (m *MemoryGateway) Close() error {
	return nil
}

// FailSaves makes every subsequent Save return err. A nil err restores normal behavior.
func (m *MemoryGateway) FailSaves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// Saves returns the number of successful Save calls.
func (m *MemoryGateway) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}
