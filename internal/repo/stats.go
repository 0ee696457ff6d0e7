package repo

import (
	"context"
	"errors"
	"eventic-backend/internal/entity"
	"time"
)

type Stats interface {
	// AddHit сохраняет просмотр эндпоинта. Повторная запись с тем же HitID
	// не является ошибкой и не создает дубликат.
	AddHit(hit *entity.EndpointHit) error
	// GetStats возвращает агрегированную статистику просмотров за период.
	// При unique считаются только уникальные IP.
	GetStats(start, end time.Time, uris []string, unique bool) ([]*entity.ViewStats, error)
}

type StatsCache interface {
	// GetStats возвращает закэшированную статистику по ключу запроса
	GetStats(ctx context.Context, key string) ([]*entity.ViewStats, error)
	// SetStats сохраняет статистику в кэш
	SetStats(ctx context.Context, key string, stats []*entity.ViewStats) error
}

var (
	ErrCacheMiss = errors.New("cache miss")
)
