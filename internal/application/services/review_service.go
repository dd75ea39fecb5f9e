package services

import (
	"context"

	"github.com/studynest/studyspaces-backend/internal/domain/entities"
	"github.com/studynest/studyspaces-backend/internal/domain/providers"
	"github.com/studynest/studyspaces-backend/internal/domain/repositories"
	apperrors "github.com/studynest/studyspaces-backend/pkg/errors"
)

// ReviewInput is the caller-supplied part of a new review.
type ReviewInput struct {
	Rating  int
	Content string
	Photos  []string
}

// ReviewService creates reviews on behalf of authenticated users.
type ReviewService struct {
	reviews  repositories.ReviewRepository
	profiles repositories.ProfileRepository
}

// NewReviewService creates a new review service.
func NewReviewService(reviews repositories.ReviewRepository, profiles repositories.ProfileRepository) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		profiles: profiles,
	}
}

// Create mirrors the caller's identity into profiles, then inserts the
// review. The stored author is the identity display name at creation time.
func (s *ReviewService) Create(ctx context.Context, caller *providers.Identity, areaID int64, input ReviewInput) (*entities.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.NewValidationError("rating is required and must be between 1 and 5")
	}

	profile := &entities.Profile{
		ID:        caller.ID,
		Email:     caller.Email,
		FullName:  caller.FullName,
		AvatarURL: caller.AvatarURL,
	}
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	review := &entities.Review{
		AreaID:  areaID,
		UserID:  caller.ID,
		Author:  caller.DisplayName(),
		Rating:  input.Rating,
		Content: input.Content,
		Photos:  input.Photos,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}
