package worker

import (
	"context"
	"sync"
	"time"

	"spinwheel-service/internal/service"

	"github.com/rs/zerolog"
)

type ExpiryWorker struct {
	service  service.ExpiryService
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	wg       *sync.WaitGroup
}

func NewExpiryWorker(svc service.ExpiryService, interval time.Duration, logger zerolog.Logger) *ExpiryWorker {
	return &ExpiryWorker{
		service:  svc,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *ExpiryWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Expiry worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Running pending purchase expiry")
				err := w.service.ExpireStalePending(ctx)
				if err != nil {
					w.logger.Error().Err(err).Msg("Failed to run expiry task")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Expiry worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Expiry worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *ExpiryWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}
