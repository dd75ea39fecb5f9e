package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/studynest/studyspaces-backend/internal/domain/entities"
	"github.com/studynest/studyspaces-backend/internal/domain/repositories"
	"github.com/studynest/studyspaces-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/studynest/studyspaces-backend/pkg/errors"
)

var studySpaceColumns = []interface{}{
	"id", "name", "building", "campus", "description",
	"image_url", "noise_level", "privacy_level", "amenities",
}

// StudySpaceAdapter implements study space reads in Postgres.
type StudySpaceAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewStudySpaceAdapter creates a new study space adapter.
func NewStudySpaceAdapter(client *postgres.Client) repositories.StudySpaceRepository {
	return &StudySpaceAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List returns all study spaces ordered by name ascending.
func (a *StudySpaceAdapter) List(ctx context.Context) ([]entities.StudySpace, error) {
	query, args, err := a.db.From("study_spaces").
		Select(studySpaceColumns...).
		Order(goqu.C("name").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build study space list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list study spaces", err)
	}
	defer rows.Close()

	spaces := []entities.StudySpace{}
	for rows.Next() {
		space, err := scanStudySpace(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan study space", err)
		}
		spaces = append(spaces, *space)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read study spaces", err)
	}

	return spaces, nil
}

// GetByID retrieves a study space by ID.
func (a *StudySpaceAdapter) GetByID(ctx context.Context, id int64) (*entities.StudySpace, error) {
	query, args, err := a.db.From("study_spaces").
		Select(studySpaceColumns...).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build study space query", err)
	}

	space, err := scanStudySpace(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("study space with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get study space", err)
	}

	return space, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStudySpace(row rowScanner) (*entities.StudySpace, error) {
	space := &entities.StudySpace{}
	var amenities pq.StringArray
	err := row.Scan(
		&space.ID,
		&space.Name,
		&space.Building,
		&space.Campus,
		&space.Description,
		&space.ImageURL,
		&space.NoiseLevel,
		&space.PrivacyLevel,
		&amenities,
	)
	if err != nil {
		return nil, err
	}
	space.Amenities = []string(amenities)
	return space, nil
}
