package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/studynest/studyspaces-backend/internal/api/handlers"
	"github.com/studynest/studyspaces-backend/internal/domain/entities"
	apperrors "github.com/studynest/studyspaces-backend/pkg/errors"
)

type MockStudySpaceRepo struct {
	mock.Mock
}

func (m *MockStudySpaceRepo) List(ctx context.Context) ([]entities.StudySpace, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.StudySpace), args.Error(1)
}

func (m *MockStudySpaceRepo) GetByID(ctx context.Context, id int64) (*entities.StudySpace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.StudySpace), args.Error(1)
}

func TestStudySpaceHandler_ListStudySpaces(t *testing.T) {
	repo := new(MockStudySpaceRepo)
	handler := handlers.NewStudySpaceHandler(repo)

	spaces := []entities.StudySpace{
		{ID: 1, Name: "Atrium Commons", Building: "Main Library", Campus: "North"},
		{ID: 2, Name: "Quiet Reading Room", Building: "Main Library", Campus: "North"},
	}
	repo.On("List", mock.Anything).Return(spaces, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/study-spaces", nil)
	rr := httptest.NewRecorder()

	handler.ListStudySpaces(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []entities.StudySpace
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, spaces, got)
}

func TestStudySpaceHandler_GetStudySpace(t *testing.T) {
	repo := new(MockStudySpaceRepo)
	handler := handlers.NewStudySpaceHandler(repo)

	space := &entities.StudySpace{ID: 7, Name: "Atrium Commons"}
	repo.On("GetByID", mock.Anything, int64(7)).Return(space, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/study-spaces/7", nil)
	req.SetPathValue("id", "7")
	rr := httptest.NewRecorder()

	handler.GetStudySpace(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got entities.StudySpace
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, *space, got)
}

func TestStudySpaceHandler_GetStudySpace_NotFound(t *testing.T) {
	repo := new(MockStudySpaceRepo)
	handler := handlers.NewStudySpaceHandler(repo)

	repo.On("GetByID", mock.Anything, int64(99)).
		Return(nil, apperrors.NewNotFoundError("study space not found"))

	req := httptest.NewRequest(http.MethodGet, "/api/study-spaces/99", nil)
	req.SetPathValue("id", "99")
	rr := httptest.NewRecorder()

	handler.GetStudySpace(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStudySpaceHandler_GetStudySpace_BadID(t *testing.T) {
	handler := handlers.NewStudySpaceHandler(new(MockStudySpaceRepo))

	req := httptest.NewRequest(http.MethodGet, "/api/study-spaces/abc", nil)
	req.SetPathValue("id", "abc")
	rr := httptest.NewRecorder()

	handler.GetStudySpace(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
