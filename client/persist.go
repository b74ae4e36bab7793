package client

import (
	"encoding/json"
	"sync"
)

// Persistence is the injected local storage behind the sync stores;
// swap in-memory for tests, on-disk for real use.
type Persistence interface {
	Save(key string, value any) error
	Load(key string, into any) (bool, error)
	Delete(key string) error
}

// MemoryPersistence keeps serialized values in a map.
type MemoryPersistence struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{data: make(map[string][]byte)}
}

func (m *MemoryPersistence) Save(key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = payload
	return nil
}

func (m *MemoryPersistence) Load(key string, into any) (bool, error) {
	m.mu.Lock()
	payload, ok := m.data[key]
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(payload, into)
}

func (m *MemoryPersistence) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
