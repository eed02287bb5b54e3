package geocache

import (
	"context"
	"sync"

	"logistics/internal/entities"
)

// Memory живет столько же сколько процесс, без TTL и вытеснения.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entities.Location
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entities.Location)}
}

func (m *Memory) Get(_ context.Context, address string) (*entities.Location, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	location, ok := m.entries[address]
	if !ok {
		return nil, false, nil
	}
	return &location, true, nil
}

func (m *Memory) Set(_ context.Context, address string, location entities.Location) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[address] = location
	return nil
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
