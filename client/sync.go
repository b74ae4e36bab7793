package client

import (
	"context"
	"log"
	"sync"

	"travelhub/models"
)

const draftKey = "trip:draft"

// TripSyncStore mirrors the user's trips in memory. Mutations apply
// optimistically and reconcile against the authoritative server
// record; failures roll back and surface the error.
type TripSyncStore struct {
	mu      sync.Mutex
	api     TripAPI
	persist Persistence
	trips   map[string]models.Trip
	logf    func(format string, args ...any)
}

func NewTripSyncStore(api TripAPI, persist Persistence) *TripSyncStore {
	return &TripSyncStore{
		api:     api,
		persist: persist,
		trips:   make(map[string]models.Trip),
		logf:    log.Printf,
	}
}

// Trips returns a snapshot of the mirrored state.
func (s *TripSyncStore) Trips() []models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Trip, 0, len(s.trips))
	for _, t := range s.trips {
		out = append(out, t)
	}
	return out
}

func (s *TripSyncStore) Get(tripID string) (models.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trips[tripID]
	return t, ok
}

// Create sends the trip to the server and mirrors the confirmed record.
func (s *TripSyncStore) Create(ctx context.Context, trip models.Trip) (models.Trip, error) {
	confirmed, err := s.api.CreateTrip(ctx, trip)
	if err != nil {
		return models.Trip{}, err
	}
	s.mu.Lock()
	s.trips[confirmed.TripID] = confirmed
	s.mu.Unlock()
	return confirmed, nil
}

// Update applies optimistically, then replaces the optimistic record
// with the server's; on failure the previous state is restored.
func (s *TripSyncStore) Update(ctx context.Context, trip models.Trip) (models.Trip, error) {
	s.mu.Lock()
	prev, had := s.trips[trip.TripID]
	s.trips[trip.TripID] = trip
	s.mu.Unlock()

	confirmed, err := s.api.UpdateTrip(ctx, trip)
	if err != nil {
		s.mu.Lock()
		if had {
			s.trips[trip.TripID] = prev
		} else {
			delete(s.trips, trip.TripID)
		}
		s.mu.Unlock()
		return models.Trip{}, err
	}

	s.mu.Lock()
	s.trips[confirmed.TripID] = confirmed
	s.mu.Unlock()
	return confirmed, nil
}

// Delete removes optimistically and restores on failure.
func (s *TripSyncStore) Delete(ctx context.Context, tripID string) error {
	s.mu.Lock()
	prev, had := s.trips[tripID]
	delete(s.trips, tripID)
	s.mu.Unlock()

	if err := s.api.DeleteTrip(ctx, tripID); err != nil {
		if had {
			s.mu.Lock()
			s.trips[tripID] = prev
			s.mu.Unlock()
		}
		return err
	}
	return nil
}

// AutoSave persists the editing draft silently: create when the trip
// has no server id yet, update afterwards, so repeated invocations
// never duplicate. Errors are logged, never surfaced, to keep the
// editing flow uninterrupted.
func (s *TripSyncStore) AutoSave(ctx context.Context, trip models.Trip) models.Trip {
	if err := s.persist.Save(draftKey, trip); err != nil {
		s.logf("autosave: draft persistence failed: %v", err)
	}

	var confirmed models.Trip
	var err error
	if trip.TripID == "" {
		confirmed, err = s.api.CreateTrip(ctx, trip)
	} else {
		confirmed, err = s.api.UpdateTrip(ctx, trip)
	}
	if err != nil {
		s.logf("autosave: sync failed: %v", err)
		return trip
	}

	s.mu.Lock()
	s.trips[confirmed.TripID] = confirmed
	s.mu.Unlock()
	return confirmed
}

// LoadDraft restores a previously auto-saved draft, if any.
func (s *TripSyncStore) LoadDraft() (models.Trip, bool) {
	var draft models.Trip
	ok, err := s.persist.Load(draftKey, &draft)
	if err != nil {
		s.logf("autosave: draft load failed: %v", err)
		return models.Trip{}, false
	}
	return draft, ok
}

// PostSyncStore mirrors feed posts and handles optimistic like
// toggles.
type PostSyncStore struct {
	mu    sync.Mutex
	api   PostAPI
	posts map[string]models.Post
}

func NewPostSyncStore(api PostAPI) *PostSyncStore {
	return &PostSyncStore{api: api, posts: make(map[string]models.Post)}
}

// SetPosts replaces the mirrored feed, e.g. after a list call.
func (s *PostSyncStore) SetPosts(list []models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = make(map[string]models.Post, len(list))
	for _, p := range list {
		s.posts[p.PostID] = p
	}
}

func (s *PostSyncStore) Get(postID string) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[postID]
	return p, ok
}

// ToggleLike flips the viewer's like optimistically, then reconciles
// with the server count; rolls back on failure.
func (s *PostSyncStore) ToggleLike(ctx context.Context, postID, viewerID string) (LikeState, error) {
	s.mu.Lock()
	prev, ok := s.posts[postID]
	if ok {
		s.posts[postID] = flipLike(prev, viewerID)
	}
	s.mu.Unlock()

	state, err := s.api.ToggleLike(ctx, postID)
	if err != nil {
		if ok {
			s.mu.Lock()
			s.posts[postID] = prev
			s.mu.Unlock()
		}
		return LikeState{}, err
	}

	// reconcile: the server count is authoritative
	s.mu.Lock()
	if post, exists := s.posts[postID]; exists {
		if state.Liked != post.LikedBy(viewerID) {
			post = flipLike(post, viewerID)
		}
		s.posts[postID] = post
	}
	s.mu.Unlock()
	return state, nil
}

func flipLike(post models.Post, viewerID string) models.Post {
	if post.LikedBy(viewerID) {
		likes := make([]string, 0, len(post.Likes))
		for _, id := range post.Likes {
			if id != viewerID {
				likes = append(likes, id)
			}
		}
		post.Likes = likes
		return post
	}
	post.Likes = append(append([]string{}, post.Likes...), viewerID)
	return post
}
