package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/andrescamacho/eveindustry-go/internal/adapters/archive"
	"github.com/andrescamacho/eveindustry-go/internal/adapters/metrics"
	"github.com/andrescamacho/eveindustry-go/internal/adapters/persistence"
	"github.com/andrescamacho/eveindustry-go/internal/adapters/provider"
	"github.com/andrescamacho/eveindustry-go/internal/adapters/recordyaml"
	"github.com/andrescamacho/eveindustry-go/internal/application/common"
	"github.com/andrescamacho/eveindustry-go/internal/application/industry/services"
	"github.com/andrescamacho/eveindustry-go/internal/application/setup"
	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/infrastructure/config"
	"github.com/andrescamacho/eveindustry-go/internal/infrastructure/database"
	"github.com/andrescamacho/eveindustry-go/internal/infrastructure/logging"
)

// application holds everything a command needs for one invocation
type application struct {
	cfg      *config.Config
	mediator common.Mediator
	tasks    *services.TaskService
	registry *prometheus.Registry
	closers  []func() error
}

// openApplication loads configuration and wires storage, catalog, provider
// and handlers. The returned context carries the configured logger.
func openApplication(ctx context.Context) (*application, context.Context, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, ctx, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	app := &application{cfg: cfg}
	if err := app.wire(&ctx); err != nil {
		_ = app.Close()
		return nil, ctx, err
	}
	return app, ctx, nil
}

func (a *application) wire(ctx *context.Context) error {
	logger, err := logging.NewLogger(a.cfg.Logging)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, logger.Close)
	*ctx = common.WithLogger(*ctx, logger)

	db, err := database.NewConnection(&a.cfg.Database)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, func() error { return database.Close(db) })
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	cat, err := a.openCatalog()
	if err != nil {
		return err
	}

	return a.wireHandlers(*ctx, db, cat)
}

func (a *application) openCatalog() (catalog.Catalog, error) {
	if a.cfg.Catalog.ArchivePath == "" {
		return nil, nil
	}
	zc, err := archive.Open(a.cfg.Catalog.ArchivePath)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, zc.Close)
	return zc, nil
}

func (a *application) wireHandlers(ctx context.Context, db *gorm.DB, cat catalog.Catalog) error {
	itemRepo := persistence.NewGormItemRepository(db)
	priceRepo := persistence.NewGormMarketPriceRepository(db)
	docRepo := persistence.NewGormTaskDocumentRepository(db)

	p, err := provider.Load(ctx, itemRepo, priceRepo, cat, provider.Defaults{
		SolarSystem:    a.cfg.Market.DefaultSystem,
		ProducedMarket: a.cfg.Market.ProducedMarket(),
		RequiredMarket: a.cfg.Market.RequiredMarket(),
	})
	if err != nil {
		return err
	}

	var observers []services.TaskObserver
	if a.cfg.Metrics.Enabled {
		metrics.InitRegistry()
		a.registry = metrics.GetRegistry()
		collector := metrics.NewIndustryMetricsCollector(a.cfg.Metrics.Namespace)
		if err := collector.Register(a.registry); err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
		observers = append(observers, collector)
	}

	a.tasks = services.NewTaskService(p, recordyaml.Codec{}, docRepo, observers...)
	m, err := setup.NewHandlerRegistry(a.tasks, itemRepo, priceRepo, p, nil).CreateConfiguredMediator()
	if err != nil {
		return err
	}
	a.mediator = m
	return nil
}

// Close writes the metrics text file, if configured, and releases resources
// in reverse order of acquisition
func (a *application) Close() error {
	var errs []error
	if a.registry != nil && a.cfg.Metrics.TextfilePath != "" {
		if err := prometheus.WriteToTextfile(a.cfg.Metrics.TextfilePath, a.registry); err != nil {
			errs = append(errs, fmt.Errorf("failed to write metrics: %w", err))
		}
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// send dispatches request and asserts the response type
func send[R any](ctx context.Context, app *application, request common.Request) (R, error) {
	var zero R
	resp, err := app.mediator.Send(ctx, request)
	if err != nil {
		return zero, err
	}
	out, ok := resp.(R)
	if !ok {
		return zero, fmt.Errorf("unexpected response type %T", resp)
	}
	return out, nil
}
