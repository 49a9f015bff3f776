package setup

import (
	"github.com/andrescamacho/eveindustry-go/internal/application/common"
	industryCommands "github.com/andrescamacho/eveindustry-go/internal/application/industry/commands"
	industryQueries "github.com/andrescamacho/eveindustry-go/internal/application/industry/queries"
	"github.com/andrescamacho/eveindustry-go/internal/application/industry/services"
	marketCommands "github.com/andrescamacho/eveindustry-go/internal/application/market/commands"
	marketQueries "github.com/andrescamacho/eveindustry-go/internal/application/market/queries"
	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// ProviderSink receives items and prices so a live data provider stays
// consistent with what was just saved
type ProviderSink interface {
	marketCommands.ItemSink
	marketCommands.PriceSink
}

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	tasks     *services.TaskService
	itemRepo  catalog.ItemRepository
	priceRepo market.PriceRepository
	sink      ProviderSink
	clock     shared.Clock
}

// NewHandlerRegistry creates a new handler registry with required dependencies
func NewHandlerRegistry(
	tasks *services.TaskService,
	itemRepo catalog.ItemRepository,
	priceRepo market.PriceRepository,
	sink ProviderSink,
	clock shared.Clock,
) *HandlerRegistry {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &HandlerRegistry{
		tasks:     tasks,
		itemRepo:  itemRepo,
		priceRepo: priceRepo,
		sink:      sink,
		clock:     clock,
	}
}

// RegisterIndustryHandlers registers the task command and query handlers:
//   - StoreTaskCommand, ExportTaskCommand, DeleteTaskCommand
//   - ShowTaskQuery, ListTasksQuery
func (r *HandlerRegistry) RegisterIndustryHandlers(m common.Mediator) error {
	registrations := []func() error{
		func() error {
			return common.RegisterHandler[*industryCommands.StoreTaskCommand](m, industryCommands.NewStoreTaskHandler(r.tasks))
		},
		func() error {
			return common.RegisterHandler[*industryCommands.ExportTaskCommand](m, industryCommands.NewExportTaskHandler(r.tasks))
		},
		func() error {
			return common.RegisterHandler[*industryCommands.DeleteTaskCommand](m, industryCommands.NewDeleteTaskHandler(r.tasks))
		},
		func() error {
			return common.RegisterHandler[*industryQueries.ShowTaskQuery](m, industryQueries.NewShowTaskHandler(r.tasks))
		},
		func() error {
			return common.RegisterHandler[*industryQueries.ListTasksQuery](m, industryQueries.NewListTasksHandler(r.tasks))
		},
	}
	for _, register := range registrations {
		if err := register(); err != nil {
			return err
		}
	}
	return nil
}

// RegisterMarketHandlers registers the item and price handlers:
//   - AddItemCommand, SetPriceCommand
//   - ListItemsQuery, ListPricesQuery
func (r *HandlerRegistry) RegisterMarketHandlers(m common.Mediator) error {
	var (
		itemSink  marketCommands.ItemSink
		priceSink marketCommands.PriceSink
	)
	if r.sink != nil {
		itemSink, priceSink = r.sink, r.sink
	}

	if err := common.RegisterHandler[*marketCommands.AddItemCommand](
		m, marketCommands.NewAddItemHandler(r.itemRepo, itemSink),
	); err != nil {
		return err
	}
	if err := common.RegisterHandler[*marketCommands.SetPriceCommand](
		m, marketCommands.NewSetPriceHandler(r.itemRepo, r.priceRepo, priceSink, r.clock),
	); err != nil {
		return err
	}
	if err := common.RegisterHandler[*marketQueries.ListItemsQuery](
		m, marketQueries.NewListItemsHandler(r.itemRepo),
	); err != nil {
		return err
	}
	return common.RegisterHandler[*marketQueries.ListPricesQuery](
		m, marketQueries.NewListPricesHandler(r.priceRepo),
	)
}

// CreateConfiguredMediator creates a mediator with request logging and every
// handler whose dependencies are available
func (r *HandlerRegistry) CreateConfiguredMediator() (common.Mediator, error) {
	m := common.NewMediator()
	m.Use(common.LoggingMiddleware)

	if r.tasks != nil {
		if err := r.RegisterIndustryHandlers(m); err != nil {
			return nil, err
		}
	}
	if r.itemRepo != nil && r.priceRepo != nil {
		if err := r.RegisterMarketHandlers(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}
