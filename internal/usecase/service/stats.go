package service

import (
	"context"
	"errors"
	"eventic-backend/internal/entity"
	"eventic-backend/internal/repo"
	"eventic-backend/internal/usecase"
	"fmt"
	"strings"

	"github.com/labstack/gommon/log"
)

type Stats struct {
	statsRepo  repo.Stats
	statsCache repo.StatsCache
}

func NewStats(statsRepo repo.Stats, statsCache repo.StatsCache) usecase.Stats {
	return &Stats{
		statsRepo:  statsRepo,
		statsCache: statsCache,
	}
}

func (s *Stats) GetStats(ctx context.Context, request *entity.GetStatsRequest) ([]*entity.ViewStats, error) {
	if request.End.Before(request.Start) {
		return nil, usecase.ErrInvalidPeriod
	}

	key := statsCacheKey(request)
	cached, err := s.statsCache.GetStats(ctx, key)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, repo.ErrCacheMiss) {
		// недоступность кэша не мешает посчитать статистику из базы
		log.Warnf("Ошибка чтения кэша статистики: %v", err)
	}

	stats, err := s.statsRepo.GetStats(request.Start, request.End, request.URIs, request.Unique)
	if err != nil {
		return nil, err
	}

	if err := s.statsCache.SetStats(ctx, key, stats); err != nil {
		log.Warnf("Ошибка записи кэша статистики: %v", err)
	}
	return stats, nil
}

func statsCacheKey(request *entity.GetStatsRequest) string {
	return fmt.Sprintf("stats:%d:%d:%s:%t",
		request.Start.Unix(),
		request.End.Unix(),
		strings.Join(request.URIs, ","),
		request.Unique)
}
