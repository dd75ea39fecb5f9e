package repositories

import (
	"context"

	"github.com/studynest/studyspaces-backend/internal/domain/entities"
)

// FavoriteRepository defines the interface for favorite operations.
type FavoriteRepository interface {
	// ListByUser returns a user's favorites joined with space summaries.
	ListByUser(ctx context.Context, userID string) ([]entities.FavoriteWithSpace, error)

	// Create inserts a favorite. Inserting an existing (user, space) pair is a
	// no-op that returns the surviving row.
	Create(ctx context.Context, userID string, spaceID int64) (*entities.Favorite, error)

	// Delete removes a user's favorite for a space.
	Delete(ctx context.Context, userID string, spaceID int64) error
}
