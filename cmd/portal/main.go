package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/academicnav/internal/cli"
	"github.com/dmitrijs2005/academicnav/internal/config"
	"github.com/dmitrijs2005/academicnav/internal/cryptox"
	"github.com/dmitrijs2005/academicnav/internal/logging"
	"github.com/dmitrijs2005/academicnav/internal/services"
	"github.com/dmitrijs2005/academicnav/internal/storage"
	"github.com/dmitrijs2005/academicnav/internal/storage/memory"
	"github.com/dmitrijs2005/academicnav/internal/storage/sqlite"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, err.Error())
		os.Exit(1)
	}

}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error(ctx, "close store", "error", err)
		}
	}()

	records := services.NewRecordService(store, logger)
	app := cli.NewApp(cli.Services{
		Accounts: services.NewAccountService(store, cryptox.NewHasher(cfg.HashParams()), logger),
		Sessions: services.NewSessionService(store, logger),
		Records:  records,
		Progress: services.NewProgressService(records),
		Tracker:  services.NewTrackerService(store, logger),
	}, logger, os.Stdin, os.Stdout)

	return app.Run(ctx)
}

// openStore returns the configured store and its release function.
func openStore(ctx context.Context, cfg *config.Config, logger logging.Logger) (storage.Store, func() error, error) {
	if cfg.InMemory() {
		logger.Warn(ctx, "using in-memory store, nothing will be persisted")
		return memory.New(), func() error { return nil }, nil
	}

	dsn, err := cfg.DatabasePath()
	if err != nil {
		return nil, nil, fmt.Errorf("prepare data dir: %w", err)
	}
	s, err := sqlite.Open(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	logger.Info(ctx, "store opened", "path", dsn)
	return s, s.Close, nil
}
