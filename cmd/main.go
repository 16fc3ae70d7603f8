package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/byetz/internal/repositories"
	"github.com/desertthunder/byetz/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var tokens *repositories.TokenRepository
	if db, err := shared.NewDatabase(config.Database.Path); err == nil {
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		if err := shared.RunMigrations(db); err == nil {
			tokens = repositories.NewTokenRepository(db)
		} else {
			logger.Warnf("failed to run migrations: %v", err)
		}
	} else {
		logger.Warnf("failed to open database: %v", err)
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Tokens: tokens,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "byetz",
		Usage:    "Browse and react to your personal video clip feed",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
