package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-recipes-service/internal/config"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestRootRegistersServiceCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"nba", "recipes", "gateway"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected %s subcommand, got %v", name, err)
		}
	}

	gw, _, _ := root.Find([]string{"gateway"})
	if gw.Flags().Lookup("db") != nil {
		t.Fatalf("gateway should not accept --db")
	}
}

func TestRootHelp(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--help"})
	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !strings.Contains(out.String(), "recipes") {
		t.Fatalf("expected subcommands in help output")
	}
}

func TestLoadConfigAppliesFlags(t *testing.T) {
	cfg, err := loadConfig(config.ServiceRecipes, serviceFlags{port: "7001", dsn: "other.db"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.Port != "7001" || cfg.Database.DSN != "other.db" {
		t.Fatalf("expected flag overrides, got port=%s dsn=%s", cfg.Port, cfg.Database.DSN)
	}
}

func TestLoadConfigRejectsBadPortFlag(t *testing.T) {
	if _, err := loadConfig(config.ServiceGateway, serviceFlags{port: "http"}); err == nil {
		t.Fatalf("expected validation error for non-numeric port")
	}
}

func TestServiceCommandFailsFastOnBadConfig(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"nba", "--port", "nope"})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected error before the server starts")
	}
}
