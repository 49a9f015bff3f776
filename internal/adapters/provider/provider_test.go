package provider_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/eveindustry-go/internal/adapters/persistence"
	"github.com/andrescamacho/eveindustry-go/internal/adapters/provider"
	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/industry"
	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
	"github.com/andrescamacho/eveindustry-go/test/helpers"
	"github.com/andrescamacho/eveindustry-go/test/helpers/mockprovider"
)

const jita = 30000142

func defaults() provider.Defaults {
	return provider.Defaults{
		SolarSystem:    jita,
		ProducedMarket: market.Default(jita),
		RequiredMarket: market.New(jita, market.OrderBuy, decimal.Zero),
	}
}

func mustPrice(t *testing.T, itemID int, sell, buy string) market.Price {
	t.Helper()
	p, err := market.NewPrice(itemID, jita, decimal.RequireFromString(sell), decimal.RequireFromString(buy), time.Now())
	require.NoError(t, err)
	return p
}

func TestProvider_MarketPrice(t *testing.T) {
	// Arrange
	p := provider.New(defaults(), nil)
	trit := shared.Item{ID: 34, Name: "Tritanium"}
	p.PutItem(trit)
	require.NoError(t, p.SetPrice(mustPrice(t, 34, "5.10", "4.90")))

	// Assert
	assert.True(t, decimal.RequireFromString("5.1").Equal(p.MarketPrice(trit, market.Default(jita))))
	assert.True(t, decimal.RequireFromString("4.9").Equal(p.MarketPrice(trit, market.New(jita, market.OrderBuy, decimal.Zero))))
	assert.True(t, decimal.NewFromInt(7).Equal(p.MarketPrice(trit, market.Manual(1, decimal.NewFromInt(7)))))
	assert.True(t, p.MarketPrice(trit, market.Default(30002187)).IsZero(), "no price in that system")
	assert.True(t, p.MarketPrice(shared.Item{ID: 35}, market.Default(jita)).IsZero())
}

func TestProvider_NilCatalogFindsNothing(t *testing.T) {
	p := provider.New(defaults(), nil)

	_, ok := p.Blueprint(691)
	assert.False(t, ok)
	_, ok = p.Refinable(1230)
	assert.False(t, ok)
}

func TestProvider_LoadFromRepositories(t *testing.T) {
	// Arrange
	ctx := context.Background()
	db := helpers.NewTestDB(t)
	items := persistence.NewGormItemRepository(db)
	prices := persistence.NewGormMarketPriceRepository(db)
	require.NoError(t, items.Save(ctx, shared.Item{ID: 34, Name: "Tritanium"}))
	require.NoError(t, items.Save(ctx, shared.Item{ID: 587, Name: "Rifter"}))
	require.NoError(t, prices.Upsert(ctx, mustPrice(t, 34, "5", "4")))
	require.NoError(t, prices.Upsert(ctx, mustPrice(t, 587, "500000", "450000")))

	cat := mockprovider.New()
	cat.AddBlueprint(&catalog.Blueprint{
		ID:        691,
		Product:   catalog.Material{ItemID: 587, Amount: 1},
		Materials: []catalog.Material{{ItemID: 34, Amount: 1000}},
		Time:      3600,
	})

	// Act
	p, err := provider.Load(ctx, items, prices, cat, defaults())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, p.Items())
	bp, ok := p.Blueprint(691)
	require.True(t, ok)

	task, err := industry.NewManufacturingTask(p, bp, 2)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000000).Equal(task.Income()))
	assert.True(t, decimal.NewFromInt(8000).Equal(task.Expense()), "required materials use the buy-order default")
	assert.True(t, decimal.NewFromInt(992000).Equal(task.Profit()))
}

func TestProvider_RefreshPrices(t *testing.T) {
	// Arrange
	ctx := context.Background()
	db := helpers.NewTestDB(t)
	prices := persistence.NewGormMarketPriceRepository(db)
	p := provider.New(defaults(), nil)
	trit := shared.Item{ID: 34}
	require.NoError(t, p.SetPrice(mustPrice(t, 34, "1", "1")))
	require.NoError(t, prices.Upsert(ctx, mustPrice(t, 34, "6", "5")))

	// Act
	err := p.RefreshPrices(ctx, prices)

	// Assert
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(6).Equal(p.MarketPrice(trit, market.Default(jita))))
}
