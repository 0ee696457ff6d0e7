package usecase

import (
	"context"
	"errors"
	"eventic-backend/internal/entity"
)

type Stats interface {
	// GetStats возвращает агрегированную статистику просмотров за период
	GetStats(ctx context.Context, request *entity.GetStatsRequest) ([]*entity.ViewStats, error)
}

type Hit interface {
	// RegisterHit регистрирует просмотр публичного эндпоинта
	RegisterHit(ctx context.Context, uri, ip string) error
}

var (
	ErrInvalidPeriod = errors.New("start must be before end")
)
