package repositories

import (
	"context"

	"github.com/studynest/studyspaces-backend/internal/domain/entities"
)

// ReviewRepository defines the interface for review operations.
type ReviewRepository interface {
	// ListByArea returns reviews for a space, newest first, joined with the
	// author profile.
	ListByArea(ctx context.Context, areaID int64) ([]entities.ReviewWithAuthor, error)

	// Create inserts a review and fills in its generated fields.
	Create(ctx context.Context, review *entities.Review) error

	// IncrementHelpful atomically adds one to the helpful counter and returns
	// the new value.
	IncrementHelpful(ctx context.Context, reviewID int64) (int, error)

	// DeleteOwned deletes a review only when it belongs to userID.
	DeleteOwned(ctx context.Context, reviewID int64, userID string) error
}
