package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventic-backend/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func endpointHit(uri string) *entity.EndpointHit {
	return &entity.EndpointHit{
		HitID:     uuid.New(),
		App:       "eventic-gateway",
		URI:       uri,
		IP:        "10.0.0.1",
		CreatedAt: time.Now(),
	}
}

func TestHitWorker_SavesHits(t *testing.T) {
	hitEventRepo := new(MockHitEventRepository)
	statsRepo := new(MockStatsRepository)
	worker := NewHitWorker(hitEventRepo, statsRepo, "test-worker")

	hits := make(chan *entity.EndpointHit, 2)
	hits <- endpointHit("/event/10")
	hits <- endpointHit("/events")
	close(hits)

	hitEventRepo.On("SubscribeHits", mock.Anything).Return((<-chan *entity.EndpointHit)(hits), nil)
	statsRepo.On("AddHit", mock.AnythingOfType("*entity.EndpointHit")).Return(nil)

	// закрытый канал завершает воркер после вычитывания всех событий
	err := worker.Start(context.Background())

	require.NoError(t, err)
	statsRepo.AssertNumberOfCalls(t, "AddHit", 2)
}

func TestHitWorker_SubscribeError(t *testing.T) {
	hitEventRepo := new(MockHitEventRepository)
	statsRepo := new(MockStatsRepository)
	worker := NewHitWorker(hitEventRepo, statsRepo, "test-worker")

	subscribeErr := errors.New("kafka unavailable")
	hitEventRepo.On("SubscribeHits", mock.Anything).Return(nil, subscribeErr)

	err := worker.Start(context.Background())

	require.ErrorIs(t, err, subscribeErr)
}

func TestHitWorker_ContextCanceled(t *testing.T) {
	hitEventRepo := new(MockHitEventRepository)
	statsRepo := new(MockStatsRepository)
	worker := NewHitWorker(hitEventRepo, statsRepo, "test-worker")

	hits := make(chan *entity.EndpointHit)
	hitEventRepo.On("SubscribeHits", mock.Anything).Return((<-chan *entity.EndpointHit)(hits), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := worker.Start(ctx)

	require.NoError(t, err)
	statsRepo.AssertNotCalled(t, "AddHit")
}

func TestHitWorker_RetriesStorageErrors(t *testing.T) {
	hitEventRepo := new(MockHitEventRepository)
	statsRepo := new(MockStatsRepository)
	worker := NewHitWorker(hitEventRepo, statsRepo, "test-worker")

	hit := endpointHit("/event/10")
	hits := make(chan *entity.EndpointHit, 1)
	hits <- hit
	close(hits)

	hitEventRepo.On("SubscribeHits", mock.Anything).Return((<-chan *entity.EndpointHit)(hits), nil)
	// первые две попытки падают, третья проходит
	statsRepo.On("AddHit", hit).Return(errors.New("connection refused")).Twice()
	statsRepo.On("AddHit", hit).Return(nil).Once()

	err := worker.Start(context.Background())

	require.NoError(t, err)
	statsRepo.AssertNumberOfCalls(t, "AddHit", 3)
}
