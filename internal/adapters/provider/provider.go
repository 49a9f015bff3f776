// Package provider implements the industry data provider over an in-memory
// item table, an order book price table and a catalog.
package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/industry"
	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// Defaults are the markets assigned to materials loaded or netted without one
type Defaults struct {
	SolarSystem    int
	ProducedMarket market.Market
	RequiredMarket market.Market
}

var _ industry.DataProvider = (*Provider)(nil)

type priceKey struct {
	itemID int
	system int
}

// Provider answers every lookup from memory. Prices may be refreshed while
// tasks read them.
type Provider struct {
	catalog.Catalog

	defaults Defaults

	mu     sync.RWMutex
	items  map[int]shared.Item
	prices map[priceKey]market.Price
}

// New creates a provider with empty item and price tables. A nil catalog
// finds nothing.
func New(defaults Defaults, cat catalog.Catalog) *Provider {
	if cat == nil {
		cat = emptyCatalog{}
	}
	return &Provider{
		Catalog:  cat,
		defaults: defaults,
		items:    make(map[int]shared.Item),
		prices:   make(map[priceKey]market.Price),
	}
}

// Load creates a provider populated from the item and price repositories
func Load(
	ctx context.Context,
	items catalog.ItemRepository,
	prices market.PriceRepository,
	cat catalog.Catalog,
	defaults Defaults,
) (*Provider, error) {
	p := New(defaults, cat)

	all, err := items.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	for _, item := range all {
		p.PutItem(item)
	}

	if err := p.RefreshPrices(ctx, prices); err != nil {
		return nil, err
	}
	return p, nil
}

// RefreshPrices replaces the price table with the repository contents
func (p *Provider) RefreshPrices(ctx context.Context, prices market.PriceRepository) error {
	all, err := prices.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load prices: %w", err)
	}

	table := make(map[priceKey]market.Price, len(all))
	for _, price := range all {
		table[priceKey{itemID: price.ItemID(), system: price.System()}] = price
	}

	p.mu.Lock()
	p.prices = table
	p.mu.Unlock()
	return nil
}

// PutItem adds or replaces an item
func (p *Provider) PutItem(item shared.Item) {
	p.mu.Lock()
	p.items[item.ID] = item
	p.mu.Unlock()
}

// SetPrice adds or replaces the order book price of an item in a solar system
func (p *Provider) SetPrice(price market.Price) error {
	if price.Sell().IsNegative() || price.Buy().IsNegative() {
		return market.ErrInvalidPrice
	}
	p.mu.Lock()
	p.prices[priceKey{itemID: price.ItemID(), system: price.System()}] = price
	p.mu.Unlock()
	return nil
}

// Item implements industry.DataProvider
func (p *Provider) Item(id int) (shared.Item, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	item, ok := p.items[id]
	return item, ok
}

// Items returns the number of known items
func (p *Provider) Items() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.items)
}

func (p *Provider) DefaultSolarSystem() int {
	return p.defaults.SolarSystem
}

func (p *Provider) DefaultProducedMarket() market.Market {
	return p.defaults.ProducedMarket
}

func (p *Provider) DefaultRequiredMarket() market.Market {
	return p.defaults.RequiredMarket
}

// MarketPrice returns the manual price of manual markets and the stored sell
// or buy price otherwise. Unknown prices are zero.
func (p *Provider) MarketPrice(item shared.Item, m market.Market) decimal.Decimal {
	if m.IsManual() {
		return m.ManualPrice()
	}
	p.mu.RLock()
	price, ok := p.prices[priceKey{itemID: item.ID, system: m.System()}]
	p.mu.RUnlock()
	if !ok {
		return decimal.Zero
	}
	return price.ForOrder(m.Order())
}

type emptyCatalog struct{}

func (emptyCatalog) Blueprint(int) (*catalog.Blueprint, bool) { return nil, false }
func (emptyCatalog) Decryptor(int) (*catalog.Decryptor, bool) { return nil, false }
func (emptyCatalog) Reaction(int) (*catalog.Reaction, bool)   { return nil, false }
func (emptyCatalog) Refinable(int) (*catalog.Refinable, bool) { return nil, false }
func (emptyCatalog) Schematic(int) (*catalog.Schematic, bool) { return nil, false }
