package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/studynest/studyspaces-backend/internal/domain/entities"
	"github.com/studynest/studyspaces-backend/internal/domain/repositories"
	"github.com/studynest/studyspaces-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/studynest/studyspaces-backend/pkg/errors"
)

// SubmissionAdapter implements the moderation queue in Postgres.
//
// Deployed schemas differ on whether submissions carries a photos column, so
// its presence is probed once at startup and inserts adapt accordingly.
type SubmissionAdapter struct {
	client    *postgres.Client
	db        *goqu.Database
	hasPhotos bool
}

// NewSubmissionAdapter creates a new submission adapter.
func NewSubmissionAdapter(ctx context.Context, client *postgres.Client) (repositories.SubmissionRepository, error) {
	adapter := &SubmissionAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}

	hasPhotos, err := adapter.probePhotosColumn(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to probe submissions schema", err)
	}
	adapter.hasPhotos = hasPhotos
	if !hasPhotos {
		log.Warn().Msg("submissions.photos column absent, submissions will be stored without photos")
	}

	return adapter, nil
}

func (a *SubmissionAdapter) probePhotosColumn(ctx context.Context) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = 'submissions' AND column_name = 'photos'
		)
	`
	var exists bool
	if err := a.client.DB().QueryRowContext(ctx, query).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// List returns submissions newest first, optionally filtered by status.
func (a *SubmissionAdapter) List(ctx context.Context, status entities.SubmissionStatus) ([]entities.SubmissionWithSubmitter, error) {
	ds := a.db.From(goqu.T("submissions").As("sub")).
		Select(a.selectColumns()...).
		LeftJoin(goqu.T("profiles").As("p"), goqu.On(goqu.I("p.id").Eq(goqu.I("sub.user_id")))).
		Order(goqu.I("sub.created_at").Desc())

	if status != "" {
		ds = ds.Where(goqu.I("sub.status").Eq(string(status)))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build submission list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list submissions", err)
	}
	defer rows.Close()

	submissions := []entities.SubmissionWithSubmitter{}
	for rows.Next() {
		submission, err := a.scanSubmissionWithSubmitter(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan submission", err)
		}
		submissions = append(submissions, *submission)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read submissions", err)
	}

	return submissions, nil
}

// GetByID retrieves a submission with its submitter profile.
func (a *SubmissionAdapter) GetByID(ctx context.Context, id int64) (*entities.SubmissionWithSubmitter, error) {
	query, args, err := a.db.From(goqu.T("submissions").As("sub")).
		Select(a.selectColumns()...).
		LeftJoin(goqu.T("profiles").As("p"), goqu.On(goqu.I("p.id").Eq(goqu.I("sub.user_id")))).
		Where(goqu.I("sub.id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build submission query", err)
	}

	submission, err := a.scanSubmissionWithSubmitter(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("submission with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get submission", err)
	}

	return submission, nil
}

// Create inserts a pending submission and fills in its generated fields.
func (a *SubmissionAdapter) Create(ctx context.Context, submission *entities.Submission) error {
	now := time.Now().UTC()
	submission.Status = entities.SubmissionStatusPending
	submission.CreatedAt = now
	submission.UpdatedAt = now

	record := goqu.Record{
		"user_id":       submission.UserID,
		"name":          submission.Name,
		"building":      submission.Building,
		"campus":        submission.Campus,
		"description":   submission.Description,
		"noise_level":   submission.NoiseLevel,
		"privacy_level": submission.PrivacyLevel,
		"amenities":     pq.Array(submission.Amenities),
		"status":        string(submission.Status),
		"created_at":    submission.CreatedAt,
		"updated_at":    submission.UpdatedAt,
	}
	if a.hasPhotos {
		record["photos"] = pq.Array(submission.Photos)
	} else {
		submission.Photos = nil
	}

	query, args, err := a.db.Insert("submissions").Rows(record).Returning("id").ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build submission insert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&submission.ID); err != nil {
		return apperrors.NewInternalError("failed to create submission", err)
	}

	return nil
}

// UpdateStatus sets the status and refreshes the updated_at timestamp.
func (a *SubmissionAdapter) UpdateStatus(ctx context.Context, id int64, status entities.SubmissionStatus) (*entities.Submission, error) {
	query := `
		UPDATE submissions SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING id, user_id, name, building, campus, description,
			noise_level, privacy_level, amenities, status, created_at, updated_at
	`

	submission := &entities.Submission{}
	var amenities pq.StringArray
	err := a.client.DB().QueryRowContext(ctx, query, id, string(status), time.Now().UTC()).Scan(
		&submission.ID,
		&submission.UserID,
		&submission.Name,
		&submission.Building,
		&submission.Campus,
		&submission.Description,
		&submission.NoiseLevel,
		&submission.PrivacyLevel,
		&amenities,
		&submission.Status,
		&submission.CreatedAt,
		&submission.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("submission with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to update submission status", err)
	}
	submission.Amenities = []string(amenities)

	return submission, nil
}

func (a *SubmissionAdapter) selectColumns() []interface{} {
	cols := []interface{}{
		goqu.I("sub.id"), goqu.I("sub.user_id"), goqu.I("sub.name"),
		goqu.I("sub.building"), goqu.I("sub.campus"), goqu.I("sub.description"),
		goqu.I("sub.noise_level"), goqu.I("sub.privacy_level"), goqu.I("sub.amenities"),
	}
	if a.hasPhotos {
		cols = append(cols, goqu.I("sub.photos"))
	}
	cols = append(cols,
		goqu.I("sub.status"), goqu.I("sub.created_at"), goqu.I("sub.updated_at"),
		goqu.L("COALESCE(p.full_name, '')").As("submitter_name"),
		goqu.L("COALESCE(p.email, '')").As("submitter_email"),
	)
	return cols
}

func (a *SubmissionAdapter) scanSubmissionWithSubmitter(row rowScanner) (*entities.SubmissionWithSubmitter, error) {
	submission := &entities.SubmissionWithSubmitter{}
	var amenities, photos pq.StringArray

	dest := []interface{}{
		&submission.ID, &submission.UserID, &submission.Name,
		&submission.Building, &submission.Campus, &submission.Description,
		&submission.NoiseLevel, &submission.PrivacyLevel, &amenities,
	}
	if a.hasPhotos {
		dest = append(dest, &photos)
	}
	dest = append(dest,
		&submission.Status, &submission.CreatedAt, &submission.UpdatedAt,
		&submission.SubmitterName, &submission.SubmitterEmail,
	)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	submission.Amenities = []string(amenities)
	submission.Photos = []string(photos)
	return submission, nil
}
