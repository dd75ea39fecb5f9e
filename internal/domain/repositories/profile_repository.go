package repositories

import (
	"context"

	"github.com/studynest/studyspaces-backend/internal/domain/entities"
)

// ProfileRepository defines the interface for identity profile mirrors.
type ProfileRepository interface {
	// Upsert creates or refreshes the profile row for an identity.
	Upsert(ctx context.Context, profile *entities.Profile) error
}
