package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-recipes-service/internal/domain/players"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-recipes-service/internal/logging"
	"github.com/preston-bernstein/nba-recipes-service/internal/metrics"
)

// instrumentedProvider records every upstream call on the metrics recorder and logs failures.
// It makes exactly one call per fetch.
type instrumentedProvider struct {
	next     DataProvider
	name     string
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewInstrumentedProvider wraps next so every fetch is timed and counted under "<name>.teams" or "<name>.players".
func NewInstrumentedProvider(next DataProvider, name string, recorder *metrics.Recorder, logger *slog.Logger) DataProvider {
	return &instrumentedProvider{
		next:     next,
		name:     name,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *instrumentedProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	items, err := p.next.FetchTeams(ctx)
	p.observe(ctx, p.name+".teams", start, len(items), err)
	return items, err
}

func (p *instrumentedProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	items, err := p.next.FetchPlayers(ctx)
	p.observe(ctx, p.name+".players", start, len(items), err)
	return items, err
}

func (p *instrumentedProvider) observe(ctx context.Context, source string, start time.Time, count int, err error) {
	duration := p.now().Sub(start)
	p.recorder.RecordUpstreamAttempt(source, duration, err)

	if err == nil {
		logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "upstream fetch ok",
			slog.String("source", source),
			slog.Int(logging.FieldCount, count),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
		return
	}

	if statusErr, ok := AsStatusError(err); ok && statusErr.RateLimited() {
		p.recorder.RecordRateLimit(source, statusErr.RetryAfter)
	}
	logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "upstream fetch failed",
		slog.String("source", source),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		slog.Any(logging.FieldError, err),
	)
}
