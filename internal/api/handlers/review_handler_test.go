package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/studynest/studyspaces-backend/internal/api/handlers"
	"github.com/studynest/studyspaces-backend/internal/api/middleware"
	"github.com/studynest/studyspaces-backend/internal/application/services"
	"github.com/studynest/studyspaces-backend/internal/domain/entities"
	"github.com/studynest/studyspaces-backend/internal/domain/providers"
	apperrors "github.com/studynest/studyspaces-backend/pkg/errors"
)

type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) ListByArea(ctx context.Context, areaID int64) ([]entities.ReviewWithAuthor, error) {
	args := m.Called(ctx, areaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ReviewWithAuthor), args.Error(1)
}

func (m *MockReviewRepo) Create(ctx context.Context, review *entities.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepo) IncrementHelpful(ctx context.Context, reviewID int64) (int, error) {
	args := m.Called(ctx, reviewID)
	return args.Int(0), args.Error(1)
}

func (m *MockReviewRepo) DeleteOwned(ctx context.Context, reviewID int64, userID string) error {
	args := m.Called(ctx, reviewID, userID)
	return args.Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Upsert(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func authedRequest(method, target, body string, identity *providers.Identity) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if identity != nil {
		req = req.WithContext(middleware.ContextWithIdentity(req.Context(), identity))
	}
	return req
}

func TestReviewHandler_ListReviews(t *testing.T) {
	repo := new(MockReviewRepo)
	handler := handlers.NewReviewHandler(nil, repo)

	reviews := []entities.ReviewWithAuthor{
		{Review: entities.Review{ID: 2, AreaID: 42, Rating: 4}, AuthorName: "Sam Okafor"},
		{Review: entities.Review{ID: 1, AreaID: 42, Rating: 5}, AuthorName: "Ada Osei"},
	}
	repo.On("ListByArea", mock.Anything, int64(42)).Return(reviews, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/areas/42/reviews", nil)
	req.SetPathValue("areaId", "42")
	rr := httptest.NewRecorder()

	handler.ListReviews(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []entities.ReviewWithAuthor
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, reviews, got)
}

func TestReviewHandler_CreateReview(t *testing.T) {
	reviewRepo := new(MockReviewRepo)
	profileRepo := new(MockProfileRepo)
	service := services.NewReviewService(reviewRepo, profileRepo)
	handler := handlers.NewReviewHandler(service, reviewRepo)

	profileRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	reviewRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entities.Review) bool {
		return r.AreaID == 42 && r.UserID == "u_1" && r.Rating == 5 && r.Content == "Great spot"
	})).Return(nil)

	caller := &providers.Identity{ID: "u_1", Email: "sam@example.edu", FullName: "Sam Okafor"}
	req := authedRequest(http.MethodPost, "/api/areas/42/reviews",
		`{"rating":5,"content":"Great spot"}`, caller)
	req.SetPathValue("areaId", "42")
	rr := httptest.NewRecorder()

	handler.CreateReview(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var got entities.Review
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, int64(42), got.AreaID)
	assert.Equal(t, "u_1", got.UserID)
	assert.Equal(t, 0, got.Helpful)
}

func TestReviewHandler_CreateReview_CommentAlias(t *testing.T) {
	reviewRepo := new(MockReviewRepo)
	profileRepo := new(MockProfileRepo)
	service := services.NewReviewService(reviewRepo, profileRepo)
	handler := handlers.NewReviewHandler(service, reviewRepo)

	profileRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	reviewRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entities.Review) bool {
		return r.Content == "Loved the light"
	})).Return(nil)

	req := authedRequest(http.MethodPost, "/api/areas/42/reviews",
		`{"rating":4,"comment":"Loved the light"}`, &providers.Identity{ID: "u_1"})
	req.SetPathValue("areaId", "42")
	rr := httptest.NewRecorder()

	handler.CreateReview(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestReviewHandler_CreateReview_MissingRating(t *testing.T) {
	reviewRepo := new(MockReviewRepo)
	service := services.NewReviewService(reviewRepo, new(MockProfileRepo))
	handler := handlers.NewReviewHandler(service, reviewRepo)

	req := authedRequest(http.MethodPost, "/api/areas/42/reviews",
		`{"content":"no rating"}`, &providers.Identity{ID: "u_1"})
	req.SetPathValue("areaId", "42")
	rr := httptest.NewRecorder()

	handler.CreateReview(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewHandler_CreateReview_Unauthenticated(t *testing.T) {
	handler := handlers.NewReviewHandler(nil, new(MockReviewRepo))

	req := authedRequest(http.MethodPost, "/api/areas/42/reviews", `{"rating":5}`, nil)
	req.SetPathValue("areaId", "42")
	rr := httptest.NewRecorder()

	handler.CreateReview(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestReviewHandler_MarkHelpful(t *testing.T) {
	repo := new(MockReviewRepo)
	handler := handlers.NewReviewHandler(nil, repo)

	repo.On("IncrementHelpful", mock.Anything, int64(9)).Return(3, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/reviews/9/helpful", nil)
	req.SetPathValue("reviewId", "9")
	rr := httptest.NewRecorder()

	handler.MarkHelpful(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"helpful":3}`, rr.Body.String())
}

func TestReviewHandler_MarkHelpful_NotFound(t *testing.T) {
	repo := new(MockReviewRepo)
	handler := handlers.NewReviewHandler(nil, repo)

	repo.On("IncrementHelpful", mock.Anything, int64(404)).
		Return(0, apperrors.NewNotFoundError("review not found"))

	req := httptest.NewRequest(http.MethodPut, "/api/reviews/404/helpful", nil)
	req.SetPathValue("reviewId", "404")
	rr := httptest.NewRecorder()

	handler.MarkHelpful(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestReviewHandler_DeleteReview(t *testing.T) {
	repo := new(MockReviewRepo)
	handler := handlers.NewReviewHandler(nil, repo)

	repo.On("DeleteOwned", mock.Anything, int64(9), "u_1").Return(nil)

	req := authedRequest(http.MethodDelete, "/api/reviews/9", "", &providers.Identity{ID: "u_1"})
	req.SetPathValue("reviewId", "9")
	rr := httptest.NewRecorder()

	handler.DeleteReview(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestReviewHandler_DeleteReview_NotOwned(t *testing.T) {
	repo := new(MockReviewRepo)
	handler := handlers.NewReviewHandler(nil, repo)

	repo.On("DeleteOwned", mock.Anything, int64(9), "u_2").
		Return(apperrors.NewNotFoundError("review not found"))

	req := authedRequest(http.MethodDelete, "/api/reviews/9", "", &providers.Identity{ID: "u_2"})
	req.SetPathValue("reviewId", "9")
	rr := httptest.NewRecorder()

	handler.DeleteReview(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
