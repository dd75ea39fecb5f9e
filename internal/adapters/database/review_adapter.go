package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/studynest/studyspaces-backend/internal/domain/entities"
	"github.com/studynest/studyspaces-backend/internal/domain/repositories"
	"github.com/studynest/studyspaces-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/studynest/studyspaces-backend/pkg/errors"
)

// ReviewAdapter implements review persistence in Postgres.
type ReviewAdapter struct {
	client *postgres.Client
}

// NewReviewAdapter creates a new review adapter.
func NewReviewAdapter(client *postgres.Client) repositories.ReviewRepository {
	return &ReviewAdapter{client: client}
}

// ListByArea returns reviews for a space, newest first, joined with the
// author profile.
func (a *ReviewAdapter) ListByArea(ctx context.Context, areaID int64) ([]entities.ReviewWithAuthor, error) {
	query := `
		SELECT
			r.id, r.area_id, r.user_id, r.author, r.rating, r.content,
			r.photos, r.helpful, r.created_at,
			COALESCE(p.full_name, r.author) AS author_name,
			COALESCE(p.avatar_url, '') AS author_avatar
		FROM reviews r
		LEFT JOIN profiles p ON p.id = r.user_id
		WHERE r.area_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := a.client.DB().QueryContext(ctx, query, areaID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list reviews", err)
	}
	defer rows.Close()

	reviews := []entities.ReviewWithAuthor{}
	for rows.Next() {
		var review entities.ReviewWithAuthor
		var photos pq.StringArray
		err := rows.Scan(
			&review.ID,
			&review.AreaID,
			&review.UserID,
			&review.Author,
			&review.Rating,
			&review.Content,
			&photos,
			&review.Helpful,
			&review.CreatedAt,
			&review.AuthorName,
			&review.AuthorAvatar,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan review", err)
		}
		review.Photos = []string(photos)
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read reviews", err)
	}

	return reviews, nil
}

// Create inserts a review and fills in its generated fields.
func (a *ReviewAdapter) Create(ctx context.Context, review *entities.Review) error {
	query := `
		INSERT INTO reviews (area_id, user_id, author, rating, content, photos, helpful, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7)
		RETURNING id, helpful
	`

	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}

	err := a.client.DB().QueryRowContext(ctx, query,
		review.AreaID,
		review.UserID,
		review.Author,
		review.Rating,
		review.Content,
		pq.Array(review.Photos),
		review.CreatedAt,
	).Scan(&review.ID, &review.Helpful)

	if err != nil {
		return apperrors.NewInternalError("failed to create review", err)
	}

	return nil
}

// IncrementHelpful atomically adds one to the helpful counter.
func (a *ReviewAdapter) IncrementHelpful(ctx context.Context, reviewID int64) (int, error) {
	query := `UPDATE reviews SET helpful = helpful + 1 WHERE id = $1 RETURNING helpful`

	var helpful int
	err := a.client.DB().QueryRowContext(ctx, query, reviewID).Scan(&helpful)
	if err == sql.ErrNoRows {
		return 0, apperrors.NewNotFoundError(fmt.Sprintf("review with id %d not found", reviewID))
	}
	if err != nil {
		return 0, apperrors.NewInternalError("failed to increment helpful counter", err)
	}

	return helpful, nil
}

// DeleteOwned deletes a review only when it belongs to userID. A missing row
// and a non-owned row are indistinguishable to the caller.
func (a *ReviewAdapter) DeleteOwned(ctx context.Context, reviewID int64, userID string) error {
	query := `DELETE FROM reviews WHERE id = $1 AND user_id = $2`

	result, err := a.client.DB().ExecContext(ctx, query, reviewID, userID)
	if err != nil {
		return apperrors.NewInternalError("failed to delete review", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to delete review", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("review with id %d not found", reviewID))
	}

	return nil
}
