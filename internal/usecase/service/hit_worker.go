package service

import (
	"context"
	"eventic-backend/internal/repo"
	"eventic-backend/pkg/retry"

	"github.com/labstack/gommon/log"
)

// HitWorker вычитывает события просмотров из шины и сохраняет их в хранилище
// статистики. Сохранение повторяется при временных ошибках хранилища,
// дубликаты отбрасываются на уровне базы по hit_id.
type HitWorker struct {
	hitEventRepo repo.HitEventRepository
	statsRepo    repo.Stats
	workerID     string
}

func NewHitWorker(hitEventRepo repo.HitEventRepository, statsRepo repo.Stats, workerID string) *HitWorker {
	return &HitWorker{
		hitEventRepo: hitEventRepo,
		statsRepo:    statsRepo,
		workerID:     workerID,
	}
}

func (w *HitWorker) Start(ctx context.Context) error {
	hits, err := w.hitEventRepo.SubscribeHits(ctx)
	if err != nil {
		return err
	}

	log.Infof("Запущен воркер сохранения просмотров: %s", w.workerID)

	for {
		select {
		case <-ctx.Done():
			log.Infof("Остановка воркера сохранения просмотров: %s", w.workerID)
			return nil
		case hit, ok := <-hits:
			if !ok {
				log.Infof("Канал событий закрыт, воркер %s завершает работу", w.workerID)
				return nil
			}
			err := retry.Retry(func() error {
				return w.statsRepo.AddHit(hit)
			})
			if err != nil {
				log.Errorf("Ошибка сохранения просмотра %s: %v", hit.HitID, err)
			}
		}
	}
}
