package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studynest/studyspaces-backend/internal/application/services"
	"github.com/studynest/studyspaces-backend/internal/domain/entities"
	"github.com/studynest/studyspaces-backend/internal/domain/providers"
	apperrors "github.com/studynest/studyspaces-backend/pkg/errors"
)

type stubReviewRepo struct {
	created []*entities.Review
}

func (s *stubReviewRepo) ListByArea(ctx context.Context, areaID int64) ([]entities.ReviewWithAuthor, error) {
	return nil, nil
}

func (s *stubReviewRepo) Create(ctx context.Context, review *entities.Review) error {
	review.ID = int64(len(s.created) + 1)
	s.created = append(s.created, review)
	return nil
}

func (s *stubReviewRepo) IncrementHelpful(ctx context.Context, reviewID int64) (int, error) {
	return 0, nil
}

func (s *stubReviewRepo) DeleteOwned(ctx context.Context, reviewID int64, userID string) error {
	return nil
}

type stubProfileRepo struct {
	upserted []*entities.Profile
}

func (s *stubProfileRepo) Upsert(ctx context.Context, profile *entities.Profile) error {
	s.upserted = append(s.upserted, profile)
	return nil
}

func TestReviewService_Create(t *testing.T) {
	reviews := &stubReviewRepo{}
	profiles := &stubProfileRepo{}
	service := services.NewReviewService(reviews, profiles)

	caller := &providers.Identity{ID: "u_1", Email: "sam@example.edu", FullName: "Sam Okafor"}
	review, err := service.Create(context.Background(), caller, 42, services.ReviewInput{
		Rating:  5,
		Content: "Great spot",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), review.AreaID)
	assert.Equal(t, "u_1", review.UserID)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "Great spot", review.Content)
	assert.Equal(t, 0, review.Helpful)
	assert.Equal(t, "Sam Okafor", review.Author)

	require.Len(t, profiles.upserted, 1)
	assert.Equal(t, "u_1", profiles.upserted[0].ID)
}

func TestReviewService_Create_MissingRating(t *testing.T) {
	reviews := &stubReviewRepo{}
	service := services.NewReviewService(reviews, &stubProfileRepo{})

	_, err := service.Create(context.Background(), &providers.Identity{ID: "u_1"}, 42, services.ReviewInput{})

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	assert.Empty(t, reviews.created)
}

func TestReviewService_AuthorFallbackChain(t *testing.T) {
	tests := []struct {
		name   string
		caller providers.Identity
		author string
	}{
		{"full name wins", providers.Identity{ID: "u", FullName: "Sam Okafor", ShortName: "Sam", Email: "s@e.edu"}, "Sam Okafor"},
		{"short name next", providers.Identity{ID: "u", ShortName: "Sam", Email: "s@e.edu"}, "Sam"},
		{"email next", providers.Identity{ID: "u", Email: "s@e.edu"}, "s@e.edu"},
		{"anonymous last", providers.Identity{ID: "u"}, "Anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := &stubReviewRepo{}
			service := services.NewReviewService(reviews, &stubProfileRepo{})

			review, err := service.Create(context.Background(), &tt.caller, 1, services.ReviewInput{Rating: 4})
			require.NoError(t, err)
			assert.Equal(t, tt.author, review.Author)
		})
	}
}
