package prefs

import (
	"context"

	"travelhub/models"
)

// Store persists per-user preference documents. Get returns an empty
// document (never NotFound) for users without one.
type Store interface {
	Get(ctx context.Context, userID string) (models.Prefs, error)
	Save(ctx context.Context, p models.Prefs) error
}
