package teams

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/nba-recipes-service/internal/domain"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-recipes-service/internal/logging"
	"github.com/preston-bernstein/nba-recipes-service/internal/metrics"
	"github.com/preston-bernstein/nba-recipes-service/internal/providers"
)

const entity = "team"

// Store defines the contract for caching and retrieving teams.
type Store interface {
	InsertMissing(ctx context.Context, items []teams.Team) (int64, error)
	List(ctx context.Context) ([]teams.Team, error)
	ByID(ctx context.Context, id int) (teams.Team, error)
	ByName(ctx context.Context, name string) (teams.Team, error)
}

// Service coordinates team operations using a Store and an upstream provider.
type Service struct {
	store    Store
	provider providers.TeamProvider
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewService constructs a Service. recorder and logger may be nil.
func NewService(store Store, provider providers.TeamProvider, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		provider: provider,
		recorder: recorder,
		logger:   logger,
	}
}

// Sync fetches teams upstream, caches the ones not seen before and returns every cached team.
func (s *Service) Sync(ctx context.Context) ([]teams.Team, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	fetched, err := s.provider.FetchTeams(ctx)
	if err != nil {
		return nil, &providers.UpstreamError{Op: "fetch teams", Err: err}
	}

	inserted, err := s.store.InsertMissing(ctx, fetched)
	if err != nil {
		return nil, fmt.Errorf("cache teams: %w", err)
	}
	s.recorder.RecordCacheInserts(entity, inserted)
	logging.Info(logging.FromContext(ctx, s.logger), "teams synced",
		logging.FieldEntity, entity,
		logging.FieldCount, len(fetched),
		logging.FieldInserted, inserted,
	)

	return s.store.List(ctx)
}

// Teams returns the cached teams without contacting the upstream.
func (s *Service) Teams(ctx context.Context) ([]teams.Team, error) {
	return s.store.List(ctx)
}

// Lookup resolves an identifier by id or by exact name.
func (s *Service) Lookup(ctx context.Context, ident domain.Identifier) (teams.Team, error) {
	if id, ok := ident.ID(); ok {
		return s.store.ByID(ctx, id)
	}
	return s.store.ByName(ctx, ident.Name())
}
