package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/studynest/studyspaces-backend/internal/domain/entities"
	"github.com/studynest/studyspaces-backend/internal/domain/repositories"
	"github.com/studynest/studyspaces-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/studynest/studyspaces-backend/pkg/errors"
)

// FavoriteAdapter implements favorite persistence in Postgres. Uniqueness of
// (user_id, space_id) is enforced by the database constraint.
type FavoriteAdapter struct {
	client *postgres.Client
}

// NewFavoriteAdapter creates a new favorite adapter.
func NewFavoriteAdapter(client *postgres.Client) repositories.FavoriteRepository {
	return &FavoriteAdapter{client: client}
}

// ListByUser returns a user's favorites joined with space summaries.
func (a *FavoriteAdapter) ListByUser(ctx context.Context, userID string) ([]entities.FavoriteWithSpace, error) {
	query := `
		SELECT
			f.id, f.space_id,
			s.id, s.name, s.building, s.campus, s.image_url
		FROM favorites f
		JOIN study_spaces s ON s.id = f.space_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	rows, err := a.client.DB().QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list favorites", err)
	}
	defer rows.Close()

	favorites := []entities.FavoriteWithSpace{}
	for rows.Next() {
		var favorite entities.FavoriteWithSpace
		err := rows.Scan(
			&favorite.ID,
			&favorite.SpaceID,
			&favorite.Space.ID,
			&favorite.Space.Name,
			&favorite.Space.Building,
			&favorite.Space.Campus,
			&favorite.Space.ImageURL,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan favorite", err)
		}
		favorites = append(favorites, favorite)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read favorites", err)
	}

	return favorites, nil
}

// Create inserts a favorite. Inserting an existing (user, space) pair leaves
// the original row untouched and returns it.
func (a *FavoriteAdapter) Create(ctx context.Context, userID string, spaceID int64) (*entities.Favorite, error) {
	insert := `
		INSERT INTO favorites (user_id, space_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, space_id) DO NOTHING
		RETURNING id, created_at
	`

	favorite := &entities.Favorite{UserID: userID, SpaceID: spaceID}

	err := a.client.DB().QueryRowContext(ctx, insert, userID, spaceID, time.Now().UTC()).
		Scan(&favorite.ID, &favorite.CreatedAt)
	if err == sql.ErrNoRows {
		// Conflict: the pair already exists, return the surviving row.
		existing := `SELECT id, created_at FROM favorites WHERE user_id = $1 AND space_id = $2`
		err = a.client.DB().QueryRowContext(ctx, existing, userID, spaceID).
			Scan(&favorite.ID, &favorite.CreatedAt)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create favorite", err)
	}

	return favorite, nil
}

// Delete removes a user's favorite for a space.
func (a *FavoriteAdapter) Delete(ctx context.Context, userID string, spaceID int64) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND space_id = $2`

	result, err := a.client.DB().ExecContext(ctx, query, userID, spaceID)
	if err != nil {
		return apperrors.NewInternalError("failed to delete favorite", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to delete favorite", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("favorite for space %d not found", spaceID))
	}

	return nil
}
