package trips

import (
	"context"
	"sort"
	"sync"

	"travelhub/apperrors"
	"travelhub/models"
)

// MemoryStore keeps trips in a map; used in tests and local runs
// without a database.
type MemoryStore struct {
	mu    sync.RWMutex
	trips map[string]models.Trip
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{trips: make(map[string]models.Trip)}
}

func (m *MemoryStore) Create(_ context.Context, trip models.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.TripID] = trip
	return nil
}

func (m *MemoryStore) List(_ context.Context, ownerID string, filter ListFilter) ([]models.Trip, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := []models.Trip{}
	for _, t := range m.trips {
		if t.UserID != ownerID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		matched = append(matched, t)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return []models.Trip{}, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *MemoryStore) Get(_ context.Context, tripID string) (models.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	trip, ok := m.trips[tripID]
	if !ok {
		return models.Trip{}, apperrors.ErrNotFound
	}
	return trip, nil
}

func (m *MemoryStore) Replace(_ context.Context, trip models.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trips[trip.TripID]; !ok {
		return apperrors.ErrNotFound
	}
	m.trips[trip.TripID] = trip
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, tripID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trips[tripID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.trips, tripID)
	return nil
}
