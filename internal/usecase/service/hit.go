package service

import (
	"context"
	"eventic-backend/internal/entity"
	"eventic-backend/internal/repo"
	"eventic-backend/internal/usecase"
	"time"

	"github.com/google/uuid"
)

// statsApp - имя приложения, под которым просмотры попадают в статистику
const statsApp = "eventic-gateway"

type Hit struct {
	hitEventRepo repo.HitEventRepository
}

func NewHit(hitEventRepo repo.HitEventRepository) usecase.Hit {
	return &Hit{hitEventRepo: hitEventRepo}
}

func (h *Hit) RegisterHit(ctx context.Context, uri, ip string) error {
	hit := &entity.EndpointHit{
		HitID:     uuid.New(),
		App:       statsApp,
		URI:       uri,
		IP:        ip,
		CreatedAt: time.Now(),
	}
	return h.hitEventRepo.PublishHit(ctx, hit)
}
