package scheduler

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

type workerManager struct {
	scheduler *PostScheduler
	logger    *zap.Logger
}

func newWorkerManager(scheduler *PostScheduler, logger *zap.Logger) *workerManager {
	return &workerManager{
		scheduler: scheduler,
		logger:    logger,
	}
}

func (w *workerManager) startWorkers(ctx context.Context, stats *PollStats, idChan chan string, numWorkers int) *sync.WaitGroup {
	var wg sync.WaitGroup
	if numWorkers < 1 {
		numWorkers = 1
	}
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range idChan {
				published, err := w.scheduler.relayPost(ctx, id)
				switch {
				case err != nil:
					w.logger.Error("failed to relay post",
						zap.String("id", id),
						zap.Error(err))
					atomic.AddInt32(&stats.Failed, 1)
				case published:
					atomic.AddInt32(&stats.Published, 1)
				default:
					atomic.AddInt32(&stats.Skipped, 1)
				}
			}
		}()
	}
	return &wg
}
