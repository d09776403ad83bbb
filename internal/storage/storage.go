// Package storage provides the key/value areas the state store persists
// into. It mirrors browser storage: opaque string values under string keys.
package storage

import (
	"fmt"
	"sync"
)

// KV is a string key/value area.
type KV interface {
	// Get returns the value under key and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
}

// Driver names accepted by Open.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Open returns the KV for driver rooted at path, plus a close func.
func Open(driver, path string) (KV, func() error, error) {
	noop := func() error { return nil }
	switch driver {
	case DriverFile, "":
		kv, err := NewFile(path)
		if err != nil {
			return nil, nil, err
		}
		return kv, noop, nil
	case DriverSQLite:
		kv, err := NewSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return kv, kv.Close, nil
	case DriverMemory:
		return NewMemory(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

// Memory is an in-process KV, used for session-scoped data and tests.
type Memory struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
