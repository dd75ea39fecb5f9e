package repositories

import (
	"context"

	"github.com/studynest/studyspaces-backend/internal/domain/entities"
)

// SubmissionRepository defines the interface for moderation queue operations.
type SubmissionRepository interface {
	// List returns submissions newest first, optionally filtered by status,
	// joined with the submitter profile.
	List(ctx context.Context, status entities.SubmissionStatus) ([]entities.SubmissionWithSubmitter, error)

	// GetByID retrieves a submission with its submitter profile.
	GetByID(ctx context.Context, id int64) (*entities.SubmissionWithSubmitter, error)

	// Create inserts a pending submission and fills in its generated fields.
	Create(ctx context.Context, submission *entities.Submission) error

	// UpdateStatus sets the status and refreshes the updated_at timestamp.
	UpdateStatus(ctx context.Context, id int64, status entities.SubmissionStatus) (*entities.Submission, error)
}
