package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/studynest/studyspaces-backend/internal/domain/entities"
	"github.com/studynest/studyspaces-backend/internal/domain/providers"
	"github.com/studynest/studyspaces-backend/internal/domain/repositories"
)

// CachedStudySpaceAdapter wraps a StudySpaceRepository with caching. Listings
// are read-mostly, so short TTLs are enough to absorb browse traffic.
type CachedStudySpaceAdapter struct {
	adapter repositories.StudySpaceRepository
	cache   providers.CacheProvider
}

// NewCachedStudySpaceAdapter creates a new cached study space adapter.
func NewCachedStudySpaceAdapter(adapter repositories.StudySpaceRepository, cache providers.CacheProvider) repositories.StudySpaceRepository {
	return &CachedStudySpaceAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Cache TTLs (in seconds)
const (
	spaceByIDTTL = 300
	spaceListTTL = 180
	spaceListKey = "study_spaces:list"
)

func spaceCacheKey(id int64) string {
	return fmt.Sprintf("study_spaces:id:%d", id)
}

// List returns all study spaces, serving from cache when possible.
func (a *CachedStudySpaceAdapter) List(ctx context.Context) ([]entities.StudySpace, error) {
	if cached, err := a.cache.Get(ctx, spaceListKey); err == nil {
		var spaces []entities.StudySpace
		if err := json.Unmarshal(cached, &spaces); err == nil {
			return spaces, nil
		}
	}

	spaces, err := a.adapter.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(spaces); err == nil {
		if err := a.cache.Set(ctx, spaceListKey, data, spaceListTTL); err != nil {
			log.Warn().Err(err).Msg("failed to cache study space list")
		}
	}

	return spaces, nil
}

// GetByID retrieves a study space by ID, serving from cache when possible.
func (a *CachedStudySpaceAdapter) GetByID(ctx context.Context, id int64) (*entities.StudySpace, error) {
	cacheKey := spaceCacheKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var space entities.StudySpace
		if err := json.Unmarshal(cached, &space); err == nil {
			return &space, nil
		}
	}

	space, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(space); err == nil {
		if err := a.cache.Set(ctx, cacheKey, data, spaceByIDTTL); err != nil {
			log.Warn().Err(err).Int64("space_id", id).Msg("failed to cache study space")
		}
	}

	return space, nil
}
