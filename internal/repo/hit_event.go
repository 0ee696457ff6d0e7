package repo

import (
	"context"
	"eventic-backend/internal/entity"
)

type HitEventRepository interface {
	// PublishHit публикует событие просмотра в шину
	PublishHit(ctx context.Context, hit *entity.EndpointHit) error
	// SubscribeHits подписывается на события просмотров. Канал закрывается
	// при отмене контекста.
	SubscribeHits(ctx context.Context) (<-chan *entity.EndpointHit, error)
}
