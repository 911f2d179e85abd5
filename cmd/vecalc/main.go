// Command vecalc is an exact rational vector calculator and quiz.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/vecalc/internal/adapters/driven/config/file"
	"github.com/custodia-labs/vecalc/internal/adapters/driven/random"
	"github.com/custodia-labs/vecalc/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/vecalc/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/vecalc/internal/adapters/driving/cli"
	"github.com/custodia-labs/vecalc/internal/core/domain"
	"github.com/custodia-labs/vecalc/internal/core/ports/driven"
	"github.com/custodia-labs/vecalc/internal/core/services"
	"github.com/custodia-labs/vecalc/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	if err := cli.Execute(ctx, bootstrap); err != nil {
		stop()
		os.Exit(1)
	}
}

func bootstrap(opts cli.Options) (*cli.Services, error) {
	dir := opts.ConfigDir
	if dir == "" {
		var err error
		if dir, err = file.DefaultDir(); err != nil {
			return nil, err
		}
	}
	logger.Debug("Config directory: %s", dir)

	configStore, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	var history driven.HistoryStore
	switch settings.History.Backend {
	case domain.HistoryMemory:
		history = memory.NewHistoryStore()
	default:
		store, err := sqlite.NewStore(filepath.Join(dir, "data"))
		if err != nil {
			return nil, fmt.Errorf("opening history: %w", err)
		}
		history = store
	}
	logger.Debug("History backend: %s", settings.History.Backend)

	return &cli.Services{
		Calculator: services.NewCalculatorService(history, settingsService),
		Quiz:       services.NewQuizService(random.New(), settingsService),
		History:    services.NewHistoryService(history, settingsService),
		Settings:   settingsService,
		Watcher:    configStore,
		Close:      history.Close,
	}, nil
}
