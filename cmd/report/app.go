package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/storefront-hub/backend/config"
	"github.com/storefront-hub/backend/internal/infra/db"
	"github.com/storefront-hub/backend/internal/infra/dependency"
)

var errNoDataSource = errors.New("no analytics data source available: check DATA_SOURCE, DATABASE_URL or STOREFRONT_API_URL")

// app owns the connections opened for a single command run.
type app struct {
	injector *dependency.Injector
	closers  []func() error
}

func newApp(timezone string) (*app, error) {
	cfg := config.Load()
	if timezone != "" {
		cfg.Report.Timezone = timezone
	}

	a := &app{}
	opts := dependency.Options{}

	if cfg.Storefront.Source == config.SourceDatabase {
		database, err := db.NewConnection(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		opts.DB = database.DB()
		a.closers = append(a.closers, database.Close)
	}

	if cfg.Cache.Enabled {
		redisConn, err := db.NewRedisConnection(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis connection failed, running without cache", "error", err)
		} else {
			opts.Redis = redisConn.Client()
			a.closers = append(a.closers, redisConn.Close)
		}
	}

	a.injector = dependency.NewInjector(cfg, opts)
	if !a.injector.HasDataSource() {
		a.Close()
		return nil, errNoDataSource
	}
	return a, nil
}

// Close releases every connection opened by newApp.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Error("Failed to close connection", "error", err)
		}
	}
}
