// Command wik searches and reads Wikipedia from the terminal.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/custodia-labs/wik/internal/adapters/driven/config/file"
	filestore "github.com/custodia-labs/wik/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/wik/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wik/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/wik/internal/adapters/driven/wikipedia"
	"github.com/custodia-labs/wik/internal/adapters/driving/cli"
	"github.com/custodia-labs/wik/internal/core/domain"
	"github.com/custodia-labs/wik/internal/core/ports/driven"
	"github.com/custodia-labs/wik/internal/core/services"
	"github.com/custodia-labs/wik/internal/logger"
	"github.com/custodia-labs/wik/internal/normalisers/html"
	"github.com/custodia-labs/wik/internal/normalisers/markdown"
)

// Set by the linker.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the adapters into the core services.
func bootstrap(opts cli.Options) (*cli.Services, func() error, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("loading settings: %w", err)
	}

	store, closeStore, err := openContentStore(settings.Cache)
	if err != nil {
		return nil, nil, err
	}

	session := domain.NewSession()
	logger.Debug("Session %s, cache root %s (%s)", session, store.Root(), settings.Cache.Backend)

	client := wikipedia.NewClient(wikipedia.ConfigFromSettings(settings.API))
	cache := services.NewRequestCache(session, store)
	fetch := services.NewFetchService(
		cache,
		client,
		html.New(),
		markdown.New(),
		markdown.NewPruner(settings.Article.BoilerplateTitles, settings.Article.TrailerTitles),
		settings.Search.Limit,
	)

	teardown := func() error {
		return errors.Join(client.Close(), closeStore())
	}

	return &cli.Services{
		Search:   fetch,
		Article:  fetch,
		Settings: settingsService,
		Cache:    services.NewCacheService(cache, store),
	}, teardown, nil
}

// openContentStore opens the configured backend. The returned func closes
// whatever the backend holds open.
func openContentStore(cfg domain.CacheSettings) (driven.ContentStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case domain.CacheBackendMemory:
		return memory.NewContentStore(), noop, nil

	case domain.CacheBackendSQLite:
		root := cfg.Root
		if root == "" {
			var err error
			if root, err = filestore.DefaultRoot(); err != nil {
				return nil, nil, err
			}
		}
		store, err := sqlite.NewStore(root)
		if err != nil {
			return nil, nil, fmt.Errorf("opening cache database: %w", err)
		}
		return store, store.Close, nil

	default:
		store, err := filestore.NewContentStore(cfg.Root)
		if err != nil {
			return nil, nil, fmt.Errorf("opening cache root: %w", err)
		}
		return store, noop, nil
	}
}
