package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background jobs enabled by cfg. Auto-lock is left out
// when cfg.AutoLockAfter is zero.
func NewWorkers(cfg config.Workers, session Session, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.AutoLockAfter > 0 {
		w.workers = append(w.workers, NewAutoLock(session, cfg.AutoLockAfter, cfg.AutoLockCheckInterval, logger))
	}
	return w
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned, which happens once ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		worker := worker
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}

// Len reports how many workers are configured.
func (w *Workers) Len() int {
	return len(w.workers)
}
