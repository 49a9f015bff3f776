package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/cucumber/messages/go/v21"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/andrescamacho/eveindustry-go/internal/application/industry/services"
	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/industry"
	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
	"github.com/andrescamacho/eveindustry-go/test/helpers/mockprovider"
)

type countingListener struct {
	calls int
}

func (l *countingListener) OnMaterialSetChanged(industry.Task) {
	l.calls++
}

type industryContext struct {
	provider *mockprovider.Provider
	task     industry.Task
	listener *countingListener
	err      error

	// persistence
	db       *gorm.DB
	service  *services.TaskService
	document []byte
	storedID string
}

// InitializeIndustryScenario registers the task netting, pricing and
// persistence steps
func InitializeIndustryScenario(ctx *godog.ScenarioContext) {
	ic := &industryContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		ic.reset()
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return ctx, ic.closeDatabase()
	})

	// Catalog setup
	ctx.Step(`^the items:$`, ic.theItems)
	ctx.Step(`^blueprint (\d+) producing (\d+) of item (\d+) from:$`, ic.blueprintProducingFrom)
	ctx.Step(`^the prices in system (\d+):$`, ic.thePricesInSystem)

	// Task construction and mutation
	ctx.Step(`^I create a manufacturing task for blueprint (\d+) with (\d+) runs$`, ic.iCreateAManufacturingTask)
	ctx.Step(`^I group these manufacturing tasks:$`, ic.iGroupTheseManufacturingTasks)
	ctx.Step(`^I set the material efficiency to (\d+)$`, ic.iSetTheMaterialEfficiency)
	ctx.Step(`^I set the runs to (\d+)$`, ic.iSetTheRuns)
	ctx.Step(`^I register a listener on the task$`, ic.iRegisterAListener)
	ctx.Step(`^I price item (\d+) manually at "([^"]*)"$`, ic.iPriceItemManually)

	// Assertions
	ctx.Step(`^the task should produce:$`, ic.theTaskShouldProduce)
	ctx.Step(`^the task should require:$`, ic.theTaskShouldRequire)
	ctx.Step(`^the listener should have been notified (\d+) times?$`, ic.theListenerShouldHaveBeenNotified)
	ctx.Step(`^the task income should be "([^"]*)"$`, ic.theTaskIncomeShouldBe)
	ctx.Step(`^the task expense should be "([^"]*)"$`, ic.theTaskExpenseShouldBe)
	ctx.Step(`^the task profit should be "([^"]*)"$`, ic.theTaskProfitShouldBe)
	ctx.Step(`^the market of item (\d+) should be "([^"]*)"$`, ic.theMarketOfItemShouldBe)

	registerTaskPersistenceSteps(ctx, ic)
}

func (ic *industryContext) reset() {
	ic.provider = mockprovider.New()
	ic.task = nil
	ic.listener = nil
	ic.err = nil
	ic.db = nil
	ic.service = nil
	ic.document = nil
	ic.storedID = ""
}

// ============================================================================
// Catalog setup
// ============================================================================

func (ic *industryContext) theItems(table *godog.Table) error {
	for _, row := range dataRows(table) {
		id, err := intCell(table, row, "id")
		if err != nil {
			return err
		}
		ic.provider.AddItem(id, getCellValueFromTable(table, row, "name"))
	}
	return nil
}

func (ic *industryContext) blueprintProducingFrom(id, amount, product int, table *godog.Table) error {
	materials, err := materialsFromTable(table)
	if err != nil {
		return err
	}
	ic.provider.AddBlueprint(&catalog.Blueprint{
		ID:        id,
		Product:   catalog.Material{ItemID: product, Amount: int64(amount)},
		Materials: materials,
		Time:      3600,
	})
	return nil
}

func (ic *industryContext) thePricesInSystem(system int, table *godog.Table) error {
	for _, row := range dataRows(table) {
		itemID, err := intCell(table, row, "item")
		if err != nil {
			return err
		}
		for _, column := range []struct {
			name  string
			order market.Order
		}{{"sell", market.OrderSell}, {"buy", market.OrderBuy}} {
			price, err := decimal.NewFromString(getCellValueFromTable(table, row, column.name))
			if err != nil {
				return fmt.Errorf("invalid %s price: %w", column.name, err)
			}
			ic.provider.SetPrice(itemID, market.New(system, column.order, decimal.Zero), price)
		}
	}
	return nil
}

// ============================================================================
// Task construction and mutation
// ============================================================================

func (ic *industryContext) newManufacturingTask(blueprintID, runs int) (*industry.ManufacturingTask, error) {
	bp, ok := ic.provider.Blueprint(blueprintID)
	if !ok {
		return nil, fmt.Errorf("blueprint %d not defined", blueprintID)
	}
	return industry.NewManufacturingTask(ic.provider, bp, runs)
}

func (ic *industryContext) iCreateAManufacturingTask(blueprintID, runs int) error {
	task, err := ic.newManufacturingTask(blueprintID, runs)
	if err != nil {
		return err
	}
	ic.task = task
	return nil
}

func (ic *industryContext) iGroupTheseManufacturingTasks(table *godog.Table) error {
	var children []industry.Task
	for _, row := range dataRows(table) {
		blueprintID, err := intCell(table, row, "blueprint")
		if err != nil {
			return err
		}
		runs, err := intCell(table, row, "runs")
		if err != nil {
			return err
		}
		child, err := ic.newManufacturingTask(blueprintID, runs)
		if err != nil {
			return err
		}
		children = append(children, child)
	}

	group, err := industry.NewGroupTask(ic.provider, children...)
	if err != nil {
		return err
	}
	ic.task = group
	return nil
}

func (ic *industryContext) manufacturingTask() (*industry.ManufacturingTask, error) {
	task, ok := ic.task.(*industry.ManufacturingTask)
	if !ok {
		return nil, fmt.Errorf("expected a manufacturing task, got %T", ic.task)
	}
	return task, nil
}

func (ic *industryContext) iSetTheMaterialEfficiency(level int) error {
	task, err := ic.manufacturingTask()
	if err != nil {
		return err
	}
	return task.SetMaterialEfficiency(level)
}

func (ic *industryContext) iSetTheRuns(runs int) error {
	task, err := ic.manufacturingTask()
	if err != nil {
		return err
	}
	return task.SetRuns(runs)
}

func (ic *industryContext) iRegisterAListener() error {
	if ic.task == nil {
		return fmt.Errorf("no task created")
	}
	ic.listener = &countingListener{}
	ic.task.RegisterListener(ic.listener)
	return nil
}

func (ic *industryContext) iPriceItemManually(itemID int, price string) error {
	item, ok := ic.provider.Item(itemID)
	if !ok {
		return fmt.Errorf("item %d not defined", itemID)
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	ic.task.SetMaterialMarket(item, market.Manual(ic.provider.DefaultSolarSystem(), p))
	return nil
}

// ============================================================================
// Assertions
// ============================================================================

func (ic *industryContext) theTaskShouldProduce(table *godog.Table) error {
	if ic.task == nil {
		return fmt.Errorf("no task loaded")
	}
	return compareStacks("produced", ic.task.ProducedMaterials(), table)
}

func (ic *industryContext) theTaskShouldRequire(table *godog.Table) error {
	if ic.task == nil {
		return fmt.Errorf("no task loaded")
	}
	return compareStacks("required", ic.task.RequiredMaterials(), table)
}

func (ic *industryContext) theListenerShouldHaveBeenNotified(times int) error {
	if ic.listener == nil {
		return fmt.Errorf("no listener registered")
	}
	if ic.listener.calls != times {
		return fmt.Errorf("expected %d notifications, got %d", times, ic.listener.calls)
	}
	return nil
}

func (ic *industryContext) theTaskIncomeShouldBe(expected string) error {
	return compareDecimal("income", ic.task.Income(), expected)
}

func (ic *industryContext) theTaskExpenseShouldBe(expected string) error {
	return compareDecimal("expense", ic.task.Expense(), expected)
}

func (ic *industryContext) theTaskProfitShouldBe(expected string) error {
	return compareDecimal("profit", ic.task.Profit(), expected)
}

func (ic *industryContext) theMarketOfItemShouldBe(itemID int, expected string) error {
	if ic.task == nil {
		return fmt.Errorf("no task loaded")
	}
	item, ok := ic.provider.Item(itemID)
	if !ok {
		return fmt.Errorf("item %d not defined", itemID)
	}
	m, ok := ic.task.MaterialMarket(item)
	if !ok {
		return fmt.Errorf("item %d has no market", itemID)
	}
	if m.String() != expected {
		return fmt.Errorf("expected market %q, got %q", expected, m.String())
	}
	return nil
}

// ============================================================================
// Helper Functions
// ============================================================================

// dataRows returns the table rows after the header
func dataRows(table *godog.Table) []*messages.PickleTableRow {
	if len(table.Rows) < 2 {
		return nil
	}
	return table.Rows[1:]
}

// getCellValueFromTable gets a cell value from a table row by column name
// It uses the first row (table.Rows[0]) as the header to find the column index
func getCellValueFromTable(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}
	for i, headerCell := range table.Rows[0].Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return strings.TrimSpace(row.Cells[i].Value)
			}
			return ""
		}
	}
	return ""
}

func intCell(table *godog.Table, row *messages.PickleTableRow, columnName string) (int, error) {
	raw := getCellValueFromTable(table, row, columnName)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("column %s: invalid integer %q", columnName, raw)
	}
	return v, nil
}

func materialsFromTable(table *godog.Table) ([]catalog.Material, error) {
	var out []catalog.Material
	for _, row := range dataRows(table) {
		itemID, err := intCell(table, row, "item")
		if err != nil {
			return nil, err
		}
		amount, err := intCell(table, row, "amount")
		if err != nil {
			return nil, err
		}
		out = append(out, catalog.Material{ItemID: itemID, Amount: int64(amount)})
	}
	return out, nil
}

// compareStacks checks stacks against an item/amount table in order
func compareStacks(side string, stacks []shared.ItemStack, table *godog.Table) error {
	expected, err := materialsFromTable(table)
	if err != nil {
		return err
	}
	if len(stacks) != len(expected) {
		return fmt.Errorf("expected %d %s materials, got %v", len(expected), side, stacks)
	}
	for i, want := range expected {
		got := stacks[i]
		if got.Item.ID != want.ItemID || got.Amount != want.Amount {
			return fmt.Errorf("%s material %d: expected %d x #%d, got %s", side, i, want.Amount, want.ItemID, got)
		}
	}
	return nil
}

func compareDecimal(name string, got decimal.Decimal, expected string) error {
	want, err := decimal.NewFromString(expected)
	if err != nil {
		return fmt.Errorf("invalid expected %s %q: %w", name, expected, err)
	}
	if !got.Equal(want) {
		return fmt.Errorf("expected %s %s, got %s", name, want, got)
	}
	return nil
}
