package posts

import (
	"context"

	"travelhub/models"
)

// ListFilter narrows and orders the community feed.
type ListFilter struct {
	Tags     []string
	Location string
	GroupID  string
	Sort     string // latest, popular, trending
	Page     int
	Limit    int
}

// Store is the persistence boundary for posts. Listing variants
// return active posts only; Get returns the document regardless of
// its soft-delete flag so the service can decide.
//
// List ignores Page/Limit: it returns the sorted candidate set (a
// bounded recent window for large collections) plus the full match
// count. The service paginates after viewer filtering so page
// contents and totals stay consistent across pages.
type Store interface {
	Create(ctx context.Context, post models.Post) error
	List(ctx context.Context, filter ListFilter) ([]models.Post, int64, error)
	Get(ctx context.Context, postID string) (models.Post, error)
	Replace(ctx context.Context, post models.Post) error
	ListByIDs(ctx context.Context, postIDs []string) ([]models.Post, error)
	ListByCommenter(ctx context.Context, userID string) ([]models.Post, error)
}
