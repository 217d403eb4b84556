package storage

import (
	"context"
	"sync"
)

// MemoryStorage keeps preferences in a map. Used by tests and by
// STORAGE_BACKEND=memory for throwaway deployments.
type MemoryStorage struct {
	mu    sync.RWMutex
	zones map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{zones: make(map[string]string)}
}

func (m *MemoryStorage) GetTimezone(_ context.Context, serverID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if tz, ok := m.zones[serverID]; ok {
		return tz, nil
	}
	return "UTC", nil
}

func (m *MemoryStorage) SetTimezone(_ context.Context, serverID, timezone string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.zones[serverID] = timezone
	return nil
}

var _ TimezoneRepository = (*MemoryStorage)(nil)
