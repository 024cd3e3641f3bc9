package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/preston-bernstein/nba-recipes-service/internal/config"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/players"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/recipes"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-recipes-service/internal/store"
)

// OpenTestDB opens a migrated SQLite database in a per-test temp dir and closes it on cleanup.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.DatabaseConfig{Driver: config.DriverSQLite, DSN: filepath.Join(t.TempDir(), "test.db")}
	db, err := store.Open(cfg, nil, &players.Player{}, &teams.Team{}, &recipes.Recipe{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = store.Close(db) })
	return db
}
