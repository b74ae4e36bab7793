package prefs

import (
	"context"
	"strings"
	"time"

	"travelhub/apperrors"
	"travelhub/models"
	"travelhub/utils"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, userID string) (models.Prefs, error) {
	return s.store.Get(ctx, userID)
}

// TagChanges is the incremental preference update. Adding a tag to
// one list removes it from the other; both lists stay deduplicated.
type TagChanges struct {
	AddInterested       []string `json:"addInterested"`
	RemoveInterested    []string `json:"removeInterested"`
	AddNotInterested    []string `json:"addNotInterested"`
	RemoveNotInterested []string `json:"removeNotInterested"`
}

func (s *Service) ApplyTagChanges(ctx context.Context, userID string, changes TagChanges) (models.Prefs, error) {
	p, err := s.store.Get(ctx, userID)
	if err != nil {
		return models.Prefs{}, err
	}

	for _, tag := range utils.NormalizeTags(changes.AddInterested) {
		p.NotInterestedTags = removeTag(p.NotInterestedTags, tag)
		p.InterestedTags = addTag(p.InterestedTags, tag)
	}
	for _, tag := range utils.NormalizeTags(changes.AddNotInterested) {
		p.InterestedTags = removeTag(p.InterestedTags, tag)
		p.NotInterestedTags = addTag(p.NotInterestedTags, tag)
	}
	for _, tag := range utils.NormalizeTags(changes.RemoveInterested) {
		p.InterestedTags = removeTag(p.InterestedTags, tag)
	}
	for _, tag := range utils.NormalizeTags(changes.RemoveNotInterested) {
		p.NotInterestedTags = removeTag(p.NotInterestedTags, tag)
	}

	if err := s.store.Save(ctx, p); err != nil {
		return models.Prefs{}, err
	}
	return p, nil
}

// ToggleSave flips membership of postID in the saved set.
func (s *Service) ToggleSave(ctx context.Context, userID, postID string) (saved bool, err error) {
	p, err := s.store.Get(ctx, userID)
	if err != nil {
		return false, err
	}

	if utils.Contains(p.SavedPosts, postID) {
		p.SavedPosts = removeTag(p.SavedPosts, postID)
	} else {
		p.SavedPosts = append(p.SavedPosts, postID)
		saved = true
	}

	if err := s.store.Save(ctx, p); err != nil {
		return false, err
	}
	return saved, nil
}

// ReportPost records one report per (user, post) pair; a duplicate is
// a silent no-op, not an error.
func (s *Service) ReportPost(ctx context.Context, userID, postID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		ve := apperrors.NewValidationError()
		ve.Add("reason", "is required")
		return ve
	}

	p, err := s.store.Get(ctx, userID)
	if err != nil {
		return err
	}

	for _, r := range p.ReportedPosts {
		if r.PostID == postID {
			return nil
		}
	}

	p.ReportedPosts = append(p.ReportedPosts, models.ReportEntry{
		PostID:     postID,
		Reason:     reason,
		ReportedAt: time.Now().UTC(),
	})
	return s.store.Save(ctx, p)
}

func addTag(tags []string, tag string) []string {
	if utils.Contains(tags, tag) {
		return tags
	}
	return append(tags, tag)
}

func removeTag(tags []string, tag string) []string {
	// fresh slice: the old one may back a stored document
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}
