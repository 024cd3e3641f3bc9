package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/preston-bernstein/nba-recipes-service/internal/config"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/players"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/recipes"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/teams"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.DatabaseConfig{Driver: config.DriverSQLite, DSN: filepath.Join(t.TempDir(), "test.db")}
	db, err := Open(cfg, nil, &players.Player{}, &teams.Team{}, &recipes.Recipe{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestInsertMissingSkipsExistingRows(t *testing.T) {
	tbl := NewTable[teams.Team](openTestDB(t))
	ctx := context.Background()

	first := []teams.Team{
		{ID: 1, Name: "Atlanta Hawks", City: "Atlanta", Nickname: "Hawks"},
		{ID: 2, Name: "Boston Celtics", City: "Boston", Nickname: "Celtics"},
	}
	n, err := tbl.InsertMissing(ctx, first)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 inserted, got %d", n)
	}

	second := []teams.Team{
		{ID: 2, Name: "Renamed", City: "Nowhere", Nickname: "Ghosts"},
		{ID: 4, Name: "Charlotte Hornets", City: "Charlotte", Nickname: "Hornets"},
	}
	n, err = tbl.InsertMissing(ctx, second)
	if err != nil {
		t.Fatalf("insert again: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected only the new row to be inserted, got %d", n)
	}

	all, err := tbl.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].ID != 1 || all[1].ID != 2 || all[2].ID != 4 {
		t.Fatalf("unexpected rows %+v", all)
	}
	if all[1].Name != "Boston Celtics" {
		t.Fatalf("existing row must not be updated, got %+v", all[1])
	}
}

func TestInsertMissingEmptyIsNoop(t *testing.T) {
	tbl := NewTable[players.Player](openTestDB(t))
	n, err := tbl.InsertMissing(context.Background(), nil)
	if err != nil || n != 0 {
		t.Fatalf("expected no-op, got n=%d err=%v", n, err)
	}
}

func TestLookupByIDAndName(t *testing.T) {
	tbl := NewTable[players.Player](openTestDB(t))
	ctx := context.Background()
	height := "1.85"
	if _, err := tbl.InsertMissing(ctx, []players.Player{
		{ID: 7, Name: "Same Name"},
		{ID: 3, Name: "Same Name", Height: &height},
		{ID: 9, Name: "Other"},
	}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	p, err := tbl.ByID(ctx, 9)
	if err != nil || p.Name != "Other" {
		t.Fatalf("expected player 9, got %+v err=%v", p, err)
	}

	p, err = tbl.ByName(ctx, "Same Name")
	if err != nil {
		t.Fatalf("by name: %v", err)
	}
	if p.ID != 3 || p.Height == nil || *p.Height != "1.85" {
		t.Fatalf("expected lowest id match, got %+v", p)
	}

	if _, err := tbl.ByID(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := tbl.ByName(ctx, "same name"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected exact name match only, got %v", err)
	}
}

func TestCreateAllAssignsIDsAndDelete(t *testing.T) {
	tbl := NewTable[recipes.Recipe](openTestDB(t))
	ctx := context.Background()

	items := []recipes.Recipe{
		{Name: "Pancakes", Ingredients: "flour", Instructions: "fry"},
		{Name: "Pancakes", Ingredients: "flour", Instructions: "fry"},
		{Name: "Soup", Ingredients: "water", Instructions: "boil"},
	}
	if err := tbl.CreateAll(ctx, items); err != nil {
		t.Fatalf("create: %v", err)
	}
	if n, _ := tbl.Count(ctx); n != 3 {
		t.Fatalf("expected 3 rows without dedup, got %d", n)
	}

	all, _ := tbl.List(ctx)
	for _, r := range all {
		got, err := tbl.ByID(ctx, r.ID)
		if err != nil || got.Name != r.Name {
			t.Fatalf("expected recipe %d to be retrievable, got %+v err=%v", r.ID, got, err)
		}
	}

	if err := tbl.Delete(ctx, all[0].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := tbl.ByID(ctx, all[0].ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deleted recipe to be gone, got %v", err)
	}
	if err := tbl.Delete(ctx, all[0].ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestCreateAllEmptyWritesNothing(t *testing.T) {
	tbl := NewTable[recipes.Recipe](openTestDB(t))
	if err := tbl.CreateAll(context.Background(), []recipes.Recipe{}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if n, _ := tbl.Count(context.Background()); n != 0 {
		t.Fatalf("expected empty table, got %d", n)
	}
}

func TestListEmptyReturnsNonNilSlice(t *testing.T) {
	all, err := NewTable[teams.Team](openTestDB(t)).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if all == nil || len(all) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", all)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(config.DatabaseConfig{Driver: "mysql", DSN: "x"}, nil); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
}

func TestCloseNilIsSafe(t *testing.T) {
	if err := Close(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
