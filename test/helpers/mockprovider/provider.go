// Package mockprovider is an in-memory industry data provider for tests.
package mockprovider

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// JitaSystemID is the solar system Provider defaults to
const JitaSystemID = 30000142

type priceKey struct {
	itemID int
	market market.Key
}

// Provider is an in-memory data provider
type Provider struct {
	mu sync.RWMutex

	items      map[int]shared.Item
	prices     map[priceKey]decimal.Decimal
	blueprints map[int]*catalog.Blueprint
	decryptors map[int]*catalog.Decryptor
	reactions  map[int]*catalog.Reaction
	refinables map[int]*catalog.Refinable
	schematics map[int]*catalog.Schematic

	defaultSystem  int
	producedMarket market.Market
	requiredMarket market.Market

	priceLookups int
}

// New creates an empty provider whose default markets are
// sell orders in JitaSystemID
func New() *Provider {
	return &Provider{
		items:          make(map[int]shared.Item),
		prices:         make(map[priceKey]decimal.Decimal),
		blueprints:     make(map[int]*catalog.Blueprint),
		decryptors:     make(map[int]*catalog.Decryptor),
		reactions:      make(map[int]*catalog.Reaction),
		refinables:     make(map[int]*catalog.Refinable),
		schematics:     make(map[int]*catalog.Schematic),
		defaultSystem:  JitaSystemID,
		producedMarket: market.Default(JitaSystemID),
		requiredMarket: market.Default(JitaSystemID),
	}
}

// AddItem registers an item and returns it
func (m *Provider) AddItem(id int, name string) shared.Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	item := shared.Item{ID: id, Name: name}
	m.items[id] = item
	return item
}

// SetPrice sets the unit price of an item under a market
func (m *Provider) SetPrice(itemID int, mk market.Market, price decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices[priceKey{itemID: itemID, market: mk.Key()}] = price
}

// SetDefaultMarkets overrides the produced/required default markets
func (m *Provider) SetDefaultMarkets(produced, required market.Market) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.producedMarket = produced
	m.requiredMarket = required
}

func (m *Provider) AddBlueprint(bp *catalog.Blueprint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blueprints[bp.ID] = bp
}

func (m *Provider) AddDecryptor(d *catalog.Decryptor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decryptors[d.ID] = d
}

func (m *Provider) AddReaction(r *catalog.Reaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reactions[r.ID] = r
}

func (m *Provider) AddRefinable(r *catalog.Refinable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refinables[r.ItemID] = r
}

func (m *Provider) AddSchematic(s *catalog.Schematic) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schematics[s.ID] = s
}

// PriceLookups returns how many times MarketPrice was called
func (m *Provider) PriceLookups() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.priceLookups
}

func (m *Provider) Item(id int) (shared.Item, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.items[id]
	return item, ok
}

func (m *Provider) DefaultSolarSystem() int {
	return m.defaultSystem
}

func (m *Provider) DefaultProducedMarket() market.Market {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.producedMarket
}

func (m *Provider) DefaultRequiredMarket() market.Market {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requiredMarket
}

// MarketPrice returns the manual price for manual markets, otherwise the
// price set with SetPrice, or zero
func (m *Provider) MarketPrice(item shared.Item, mk market.Market) decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.priceLookups++
	if mk.IsManual() {
		return mk.ManualPrice()
	}
	if p, ok := m.prices[priceKey{itemID: item.ID, market: mk.Key()}]; ok {
		return p
	}
	return decimal.Zero
}

func (m *Provider) Blueprint(id int) (*catalog.Blueprint, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	bp, ok := m.blueprints[id]
	return bp, ok
}

func (m *Provider) Decryptor(id int) (*catalog.Decryptor, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.decryptors[id]
	return d, ok
}

func (m *Provider) Reaction(id int) (*catalog.Reaction, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.reactions[id]
	return r, ok
}

func (m *Provider) Refinable(itemID int) (*catalog.Refinable, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.refinables[itemID]
	return r, ok
}

func (m *Provider) Schematic(id int) (*catalog.Schematic, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.schematics[id]
	return s, ok
}
