package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventic-backend/internal/entity"
	"eventic-backend/internal/repo"
	"eventic-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func statsRequest() *entity.GetStatsRequest {
	return &entity.GetStatsRequest{
		Start:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		URIs:   []string{"/event/10"},
		Unique: false,
	}
}

func TestStats_GetStats_CacheMiss(t *testing.T) {
	statsRepo := new(MockStatsRepository)
	statsCache := new(MockStatsCache)
	service := NewStats(statsRepo, statsCache)

	request := statsRequest()
	expected := []*entity.ViewStats{{App: "eventic-gateway", URI: "/event/10", Hits: 5}}
	statsCache.On("GetStats", mock.Anything, mock.AnythingOfType("string")).Return(nil, repo.ErrCacheMiss)
	statsRepo.On("GetStats", request.Start, request.End, request.URIs, false).Return(expected, nil)
	statsCache.On("SetStats", mock.Anything, mock.AnythingOfType("string"), expected).Return(nil)

	stats, err := service.GetStats(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, expected, stats)
	statsCache.AssertExpectations(t)
}

func TestStats_GetStats_CacheHit(t *testing.T) {
	statsRepo := new(MockStatsRepository)
	statsCache := new(MockStatsCache)
	service := NewStats(statsRepo, statsCache)

	cached := []*entity.ViewStats{{App: "eventic-gateway", URI: "/event/10", Hits: 5}}
	statsCache.On("GetStats", mock.Anything, mock.AnythingOfType("string")).Return(cached, nil)

	stats, err := service.GetStats(context.Background(), statsRequest())

	require.NoError(t, err)
	assert.Equal(t, cached, stats)
	// при попадании в кэш база не трогается
	statsRepo.AssertNotCalled(t, "GetStats")
}

func TestStats_GetStats_CacheUnavailable(t *testing.T) {
	statsRepo := new(MockStatsRepository)
	statsCache := new(MockStatsCache)
	service := NewStats(statsRepo, statsCache)

	request := statsRequest()
	expected := []*entity.ViewStats{{App: "eventic-gateway", URI: "/event/10", Hits: 5}}
	statsCache.On("GetStats", mock.Anything, mock.AnythingOfType("string")).Return(nil, errors.New("redis down"))
	statsRepo.On("GetStats", request.Start, request.End, request.URIs, false).Return(expected, nil)
	statsCache.On("SetStats", mock.Anything, mock.AnythingOfType("string"), expected).Return(errors.New("redis down"))

	// недоступный кэш не мешает ответить из базы
	stats, err := service.GetStats(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}

func TestStats_GetStats_InvalidPeriod(t *testing.T) {
	statsRepo := new(MockStatsRepository)
	statsCache := new(MockStatsCache)
	service := NewStats(statsRepo, statsCache)

	request := statsRequest()
	request.Start, request.End = request.End, request.Start

	_, err := service.GetStats(context.Background(), request)

	require.ErrorIs(t, err, usecase.ErrInvalidPeriod)
	statsRepo.AssertNotCalled(t, "GetStats")
	statsCache.AssertNotCalled(t, "GetStats")
}

func TestStats_CacheKey_DependsOnRequest(t *testing.T) {
	base := statsRequest()

	unique := statsRequest()
	unique.Unique = true

	otherURIs := statsRequest()
	otherURIs.URIs = []string{"/events"}

	assert.NotEqual(t, statsCacheKey(base), statsCacheKey(unique))
	assert.NotEqual(t, statsCacheKey(base), statsCacheKey(otherURIs))
	assert.Equal(t, statsCacheKey(base), statsCacheKey(statsRequest()))
}
