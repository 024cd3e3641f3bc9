package players

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/nba-recipes-service/internal/domain"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/players"
	"github.com/preston-bernstein/nba-recipes-service/internal/logging"
	"github.com/preston-bernstein/nba-recipes-service/internal/metrics"
	"github.com/preston-bernstein/nba-recipes-service/internal/providers"
)

const entity = "player"

// Store defines the contract for caching and retrieving players.
type Store interface {
	InsertMissing(ctx context.Context, items []players.Player) (int64, error)
	List(ctx context.Context) ([]players.Player, error)
	ByID(ctx context.Context, id int) (players.Player, error)
	ByName(ctx context.Context, name string) (players.Player, error)
}

// Service coordinates player operations using a Store and an upstream provider.
type Service struct {
	store    Store
	provider providers.PlayerProvider
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewService constructs a Service. recorder and logger may be nil.
func NewService(store Store, provider providers.PlayerProvider, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		provider: provider,
		recorder: recorder,
		logger:   logger,
	}
}

// Sync fetches players upstream, caches the ones not seen before and returns every cached player.
func (s *Service) Sync(ctx context.Context) ([]players.Player, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	fetched, err := s.provider.FetchPlayers(ctx)
	if err != nil {
		return nil, &providers.UpstreamError{Op: "fetch players", Err: err}
	}

	inserted, err := s.store.InsertMissing(ctx, fetched)
	if err != nil {
		return nil, fmt.Errorf("cache players: %w", err)
	}
	s.recorder.RecordCacheInserts(entity, inserted)
	logging.Info(logging.FromContext(ctx, s.logger), "players synced",
		logging.FieldEntity, entity,
		logging.FieldCount, len(fetched),
		logging.FieldInserted, inserted,
	)

	return s.store.List(ctx)
}

// Players returns the cached players without contacting the upstream.
func (s *Service) Players(ctx context.Context) ([]players.Player, error) {
	return s.store.List(ctx)
}

// Lookup resolves an identifier by id or by exact name.
func (s *Service) Lookup(ctx context.Context, ident domain.Identifier) (players.Player, error) {
	if id, ok := ident.ID(); ok {
		return s.store.ByID(ctx, id)
	}
	return s.store.ByName(ctx, ident.Name())
}
