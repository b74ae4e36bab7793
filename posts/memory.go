package posts

import (
	"context"
	"sync"
	"time"

	"travelhub/apperrors"
	"travelhub/models"
	"travelhub/utils"
)

// MemoryStore keeps posts in a map; used in tests and local runs
// without a database.
type MemoryStore struct {
	mu    sync.RWMutex
	posts map[string]models.Post
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{posts: make(map[string]models.Post)}
}

func (m *MemoryStore) Create(_ context.Context, post models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts[post.PostID] = post
	return nil
}

func (m *MemoryStore) List(_ context.Context, filter ListFilter) ([]models.Post, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := []models.Post{}
	for _, p := range m.posts {
		if !p.IsActive {
			continue
		}
		if len(filter.Tags) > 0 && !hasAnyTag(p.Tags, filter.Tags) {
			continue
		}
		if filter.Location != "" && p.Location != filter.Location {
			continue
		}
		if filter.GroupID != "" && p.GroupID != filter.GroupID {
			continue
		}
		matched = append(matched, p)
	}

	sortPosts(matched, filter.Sort, time.Now().UTC())
	return matched, int64(len(matched)), nil
}

func hasAnyTag(postTags, wanted []string) bool {
	for _, w := range wanted {
		if utils.Contains(postTags, w) {
			return true
		}
	}
	return false
}

func (m *MemoryStore) Get(_ context.Context, postID string) (models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	post, ok := m.posts[postID]
	if !ok {
		return models.Post{}, apperrors.ErrNotFound
	}
	return post, nil
}

func (m *MemoryStore) Replace(_ context.Context, post models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.posts[post.PostID]; !ok {
		return apperrors.ErrNotFound
	}
	m.posts[post.PostID] = post
	return nil
}

func (m *MemoryStore) ListByIDs(_ context.Context, postIDs []string) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Post{}
	for _, id := range postIDs {
		if p, ok := m.posts[id]; ok && p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemoryStore) ListByCommenter(_ context.Context, userID string) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Post{}
	for _, p := range m.posts {
		if !p.IsActive {
			continue
		}
		if commentedBy(p, userID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func commentedBy(p models.Post, userID string) bool {
	for _, c := range p.Comments {
		if c.UserID == userID {
			return true
		}
		for _, rep := range c.Replies {
			if rep.UserID == userID {
				return true
			}
		}
	}
	return false
}
