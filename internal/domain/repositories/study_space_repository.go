package repositories

import (
	"context"

	"github.com/studynest/studyspaces-backend/internal/domain/entities"
)

// StudySpaceRepository defines the interface for study space reads.
type StudySpaceRepository interface {
	// List returns all study spaces ordered by name ascending.
	List(ctx context.Context) ([]entities.StudySpace, error)

	// GetByID retrieves a study space by ID.
	GetByID(ctx context.Context, id int64) (*entities.StudySpace, error)
}
