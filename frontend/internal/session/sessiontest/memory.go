// Package sessiontest provides a session.Storage for tests.
package sessiontest

import (
	"net/http"
	"sync"
)

// MemoryStorage holds the single record in memory. Tests use it in place of
// the cookie storage and inspect what was stored.
type MemoryStorage struct {
	mu    sync.Mutex
	value *string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Get(*http.Request) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.value == nil {
		return "", false
	}
	return *m.value, true
}

func (m *MemoryStorage) Set(_ http.ResponseWriter, _ *http.Request, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = &value
	return nil
}

func (m *MemoryStorage) Remove(http.ResponseWriter, *http.Request) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = nil
	return nil
}
