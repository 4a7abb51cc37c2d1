// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/storefront-hub/backend/config"
	"github.com/storefront-hub/backend/internal/application/adapter"
	"github.com/storefront-hub/backend/internal/application/usecase/analytics"
	"github.com/storefront-hub/backend/internal/infra/server/router"
	"github.com/storefront-hub/backend/internal/integration/adapters"
	"github.com/storefront-hub/backend/internal/integration/cache"
	"github.com/storefront-hub/backend/internal/integration/entrypoint/controller"
	"github.com/storefront-hub/backend/internal/integration/entrypoint/middleware"
	"github.com/storefront-hub/backend/internal/integration/export"
	"github.com/storefront-hub/backend/internal/integration/persistence"
)

// Options carries the infrastructure handles the injector wires in.
// Every field is optional.
type Options struct {
	DB    *gorm.DB
	Redis *redis.Client
	// Clock defaults to the system clock.
	Clock adapter.Clock

	DBHealthChecker    func() bool
	RedisHealthChecker func() bool
}

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Router *router.Router

	SummaryUseCase  *analytics.GetFinancialSummaryUseCase
	TrendUseCase    *analytics.GetRevenueTrendUseCase
	EvaluateUseCase *analytics.EvaluateSnapshotUseCase
	Exporter        *export.TrendWorkbookExporter

	ExportRateLimiter *middleware.RateLimiter
	// Cache is nil when caching is disabled or Redis is unavailable.
	Cache *cache.JSONCache
}

// NewInjector creates a new dependency injector with all dependencies wired.
// Without a usable data source, only the stateless evaluation is available.
func NewInjector(cfg *config.Config, opts Options) *Injector {
	clock := opts.Clock
	if clock == nil {
		clock = adapters.NewSystemClock()
	}
	location := cfg.Report.Location()

	inj := &Injector{
		Config:            cfg,
		EvaluateUseCase:   analytics.NewEvaluateSnapshotUseCase(clock, location),
		Exporter:          export.NewTrendWorkbookExporter(),
		ExportRateLimiter: middleware.NewRateLimiter(cfg.Report.ExportRateLimit, time.Minute),
	}

	orderRepo, expenseRepo, stockRepo, ok := newDataSources(cfg, opts.DB)
	if ok {
		if opts.Redis != nil && cfg.Cache.Enabled {
			inj.Cache = cache.NewJSONCache(opts.Redis, cfg.Cache.Prefix, cfg.Cache.TTL)
			orderRepo = cache.NewCachedOrderRepository(orderRepo, inj.Cache)
			expenseRepo = cache.NewCachedExpenseRepository(expenseRepo, inj.Cache)
			stockRepo = cache.NewCachedStockRepository(stockRepo, inj.Cache)
		}

		loader := analytics.NewSnapshotLoader(orderRepo, expenseRepo, stockRepo)
		inj.SummaryUseCase = analytics.NewGetFinancialSummaryUseCase(loader, clock, location)
		inj.TrendUseCase = analytics.NewGetRevenueTrendUseCase(loader, clock, location)
	} else {
		slog.Warn("No analytics data source available; only stateless evaluation is served",
			"source", cfg.Storefront.Source,
		)
	}

	// Create controllers
	healthController := controller.NewHealthController(opts.DBHealthChecker, opts.RedisHealthChecker)
	analyticsController := controller.NewAnalyticsController(
		inj.SummaryUseCase,
		inj.TrendUseCase,
		inj.EvaluateUseCase,
		inj.Exporter,
	)

	var invalidator controller.CacheInvalidator
	if inj.Cache != nil {
		invalidator = inj.Cache
	}
	cacheController := controller.NewCacheController(invalidator)

	inj.Router = router.NewRouter(healthController, analyticsController, cacheController, inj.ExportRateLimiter)
	return inj
}

// HasDataSource reports whether company reports can be loaded.
func (i *Injector) HasDataSource() bool {
	return i.SummaryUseCase != nil
}

func newDataSources(cfg *config.Config, db *gorm.DB) (adapter.OrderRepository, adapter.ExpenseRepository, adapter.StockRepository, bool) {
	switch cfg.Storefront.Source {
	case config.SourceStorefront:
		client := adapters.NewStorefrontClient(cfg.Storefront.BaseURL, cfg.Storefront.APIKey, cfg.Storefront.Timeout)
		return client.Orders(), client, client.Stock(), true
	default:
		if db == nil {
			return nil, nil, nil, false
		}
		return persistence.NewOrderRepository(db),
			persistence.NewExpenseRepository(db),
			persistence.NewStockRepository(db),
			true
	}
}
