package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-recipes-service/internal/metrics"
	"github.com/preston-bernstein/nba-recipes-service/internal/poller"
)

// Poller defines the minimal cache warmer behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

type syncer[T any] interface {
	Sync(ctx context.Context) ([]T, error)
}

func syncJob[T any](name string, svc syncer[T]) poller.Job {
	return poller.Job{Name: name, Run: func(ctx context.Context) error {
		_, err := svc.Sync(ctx)
		return err
	}}
}

// buildWarmer returns nil when interval is zero; the caches then fill only on request.
func buildWarmer(interval time.Duration, jobs []poller.Job, logger *slog.Logger, recorder *metrics.Recorder) Poller {
	if interval <= 0 || len(jobs) == 0 {
		return nil
	}
	return poller.New(jobs, logger, recorder, interval)
}
