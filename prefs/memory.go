package prefs

import (
	"context"
	"sync"

	"travelhub/models"
)

type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]models.Prefs
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]models.Prefs)}
}

func (m *MemoryStore) Get(_ context.Context, userID string) (models.Prefs, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.docs[userID]; ok {
		return p, nil
	}
	return emptyPrefs(userID), nil
}

func (m *MemoryStore) Save(_ context.Context, p models.Prefs) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[p.UserID] = p
	return nil
}

func emptyPrefs(userID string) models.Prefs {
	return models.Prefs{
		UserID:            userID,
		InterestedTags:    []string{},
		NotInterestedTags: []string{},
		SavedPosts:        []string{},
		ReportedPosts:     []models.ReportEntry{},
	}
}
