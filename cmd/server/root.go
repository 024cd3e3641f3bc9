package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-recipes-service/internal/config"
	"github.com/preston-bernstein/nba-recipes-service/internal/logging"
	"github.com/preston-bernstein/nba-recipes-service/internal/server"
)

// serviceFlags override the environment for one run.
type serviceFlags struct {
	port string
	dsn  string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nba-recipes",
		Short:         "NBA data, recipes and gateway HTTP services",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServiceCmd(config.ServiceNBA, "Serve NBA teams and players cached from RapidAPI"),
		newServiceCmd(config.ServiceRecipes, "Serve the recipe CRUD API"),
		newServiceCmd(config.ServiceGateway, "Proxy and compose the NBA and recipes services"),
	)
	return root
}

func newServiceCmd(svc config.Service, short string) *cobra.Command {
	var flags serviceFlags
	cmd := &cobra.Command{
		Use:   string(svc),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(svc, flags)
			if err != nil {
				return err
			}
			return runService(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&flags.port, "port", "", "listen port (overrides PORT)")
	if svc != config.ServiceGateway {
		cmd.Flags().StringVar(&flags.dsn, "db", "", "database DSN or SQLite path (overrides DB_DSN)")
	}
	return cmd
}

func loadConfig(svc config.Service, flags serviceFlags) (config.Config, error) {
	cfg, err := config.Load(svc)
	if err != nil {
		return config.Config{}, err
	}
	if flags.port != "" {
		cfg.Port = flags.port
	}
	if flags.dsn != "" && cfg.Database != nil {
		cfg.Database.DSN = flags.dsn
	}
	return cfg, cfg.Validate()
}

func runService(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: string(cfg.Service),
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}
	srv.Run(ctx, stop)
	return nil
}
