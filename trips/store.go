package trips

import (
	"context"

	"travelhub/models"
)

// ListFilter narrows an owner's trip listing.
type ListFilter struct {
	Status string
	Page   int
	Limit  int
}

// Store is the persistence boundary for trips. Get resolves by id
// regardless of owner; the service decides NotFound vs Forbidden.
type Store interface {
	Create(ctx context.Context, trip models.Trip) error
	List(ctx context.Context, ownerID string, filter ListFilter) ([]models.Trip, int64, error)
	Get(ctx context.Context, tripID string) (models.Trip, error)
	Replace(ctx context.Context, trip models.Trip) error
	Delete(ctx context.Context, tripID string) error
}
