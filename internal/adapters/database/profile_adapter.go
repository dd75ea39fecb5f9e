package database

import (
	"context"
	"time"

	"github.com/studynest/studyspaces-backend/internal/domain/entities"
	"github.com/studynest/studyspaces-backend/internal/domain/repositories"
	"github.com/studynest/studyspaces-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/studynest/studyspaces-backend/pkg/errors"
)

// ProfileAdapter mirrors identity-provider user data in Postgres.
type ProfileAdapter struct {
	client *postgres.Client
}

// NewProfileAdapter creates a new profile adapter.
func NewProfileAdapter(client *postgres.Client) repositories.ProfileRepository {
	return &ProfileAdapter{client: client}
}

// Upsert creates or refreshes the profile row for an identity. The row id is
// the identity provider's user id.
func (a *ProfileAdapter) Upsert(ctx context.Context, profile *entities.Profile) error {
	query := `
		INSERT INTO profiles (id, email, full_name, avatar_url, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			full_name = EXCLUDED.full_name,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = EXCLUDED.updated_at
	`

	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = time.Now().UTC()
	}

	_, err := a.client.DB().ExecContext(ctx, query,
		profile.ID,
		profile.Email,
		profile.FullName,
		profile.AvatarURL,
		profile.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewInternalError("failed to upsert profile", err)
	}

	return nil
}
