// Package industry models production chains as tasks that declare raw
// produced and required materials, and nets them into a minimal disjoint
// material set priced against per-material market selections.
package industry

import (
	"reflect"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// Listener is notified when a change in a task's attributes causes its
// material set to be recomputed. Implementations must be comparable
// (typically a pointer) so they can be registered and unregistered;
// RegisterListener ignores values it cannot compare.
type Listener interface {
	OnMaterialSetChanged(task Task)
}

// Task is an industry task. The set of implementations is closed: every
// variant embeds Core and is listed in the type registry.
type Task interface {
	// Kind returns the registry tag of the variant
	Kind() Kind

	// Duration returns the time the task takes to complete, in seconds
	Duration() int

	// ExtraExpense returns non-material costs such as taxes and fees
	ExtraExpense() decimal.Decimal

	ProducedMaterials() []shared.ItemStack
	RequiredMaterials() []shared.ItemStack

	Income() decimal.Decimal
	Expense() decimal.Decimal
	Profit() decimal.Decimal

	MaterialMarket(item shared.Item) (market.Market, bool)
	SetMaterialMarket(item shared.Item, m market.Market)
	MaterialMarkets() map[int]market.Market
	MaterialPrice(stack shared.ItemStack) decimal.Decimal
	MaterialUnitPrice(item shared.Item) decimal.Decimal

	RegisterListener(l Listener)
	UnregisterListener(l Listener)

	// WriteRecord writes the type tag, market assignments and variant fields
	WriteRecord(rec *record.Object)

	core() *Core
}

// variant is what each concrete task contributes to the core
type variant interface {
	Task
	rawProducedMaterials() []shared.ItemStack
	rawRequiredMaterials() []shared.ItemStack
	loadRecord(rec *record.Object) error
	writeFields(rec *record.Object)
}

// materialSet is published as a whole so readers never see a half-built set
type materialSet struct {
	produced []shared.ItemStack
	required []shared.ItemStack
}

var emptyMaterialSet = &materialSet{}

// Core holds the state shared by every task variant: material market
// assignments, the netted material set and the listener list.
type Core struct {
	kind     Kind
	provider DataProvider
	self     variant

	marketsMu sync.RWMutex
	markets   map[int]market.Market

	materials atomic.Pointer[materialSet]

	listenersMu sync.Mutex
	listeners   []Listener
}

// bind attaches the core to its variant. It must run before any other method.
// A nil provider, including a typed nil pointer, is rejected.
func (c *Core) bind(p DataProvider, kind Kind, self variant) error {
	if isNilProvider(p) {
		return ErrDataProviderMissing
	}
	c.kind = kind
	c.provider = p
	c.self = self
	c.markets = make(map[int]market.Market)
	c.materials.Store(emptyMaterialSet)
	return nil
}

func (c *Core) core() *Core {
	return c
}

// Kind returns the registry tag of the task
func (c *Core) Kind() Kind {
	return c.kind
}

// Provider returns the data provider the task was built with
func (c *Core) Provider() DataProvider {
	return c.provider
}

// ExtraExpense is zero unless a variant charges taxes or fees
func (c *Core) ExtraExpense() decimal.Decimal {
	return decimal.Zero
}

// ProducedMaterials returns a copy of the netted produced materials
func (c *Core) ProducedMaterials() []shared.ItemStack {
	return cloneStacks(c.materials.Load().produced)
}

// RequiredMaterials returns a copy of the netted required materials
func (c *Core) RequiredMaterials() []shared.ItemStack {
	return cloneStacks(c.materials.Load().required)
}

// SetMaterialMarket assigns the market a material is bought or sold on.
// It does not recompute materials and does not notify listeners.
func (c *Core) SetMaterialMarket(item shared.Item, m market.Market) {
	c.marketsMu.Lock()
	c.markets[item.ID] = m
	c.marketsMu.Unlock()
}

// MaterialMarket returns the market assigned to item
func (c *Core) MaterialMarket(item shared.Item) (market.Market, bool) {
	c.marketsMu.RLock()
	defer c.marketsMu.RUnlock()
	m, ok := c.markets[item.ID]
	return m, ok
}

// MaterialMarkets returns a copy of every market assignment keyed by item ID
func (c *Core) MaterialMarkets() map[int]market.Market {
	c.marketsMu.RLock()
	defer c.marketsMu.RUnlock()
	out := make(map[int]market.Market, len(c.markets))
	for id, m := range c.markets {
		out[id] = m
	}
	return out
}

// assignDefaultMarket sets m for itemID unless an assignment already exists
func (c *Core) assignDefaultMarket(itemID int, m func() market.Market) {
	c.marketsMu.Lock()
	defer c.marketsMu.Unlock()
	if _, ok := c.markets[itemID]; !ok {
		c.markets[itemID] = m()
	}
}

// MaterialUnitPrice returns the unit price of item under its assigned market,
// or zero when the item has no market
func (c *Core) MaterialUnitPrice(item shared.Item) decimal.Decimal {
	m, ok := c.MaterialMarket(item)
	if !ok {
		return decimal.Zero
	}
	return c.provider.MarketPrice(item, m)
}

// MaterialPrice returns the unit price of the stack's item times its amount
func (c *Core) MaterialPrice(stack shared.ItemStack) decimal.Decimal {
	return c.MaterialUnitPrice(stack.Item).Mul(decimal.NewFromInt(stack.Amount))
}

// Income is the market value of every produced material
func (c *Core) Income() decimal.Decimal {
	sum := decimal.Zero
	for _, m := range c.materials.Load().produced {
		sum = sum.Add(c.MaterialPrice(m))
	}
	return sum
}

// Expense is the extra expense plus the market value of every required material
func (c *Core) Expense() decimal.Decimal {
	sum := c.self.ExtraExpense()
	for _, m := range c.materials.Load().required {
		sum = sum.Add(c.MaterialPrice(m))
	}
	return sum
}

// Profit is income minus expense
func (c *Core) Profit() decimal.Decimal {
	return c.Income().Sub(c.Expense())
}

// RegisterListener adds l to the listener list. Registering a listener twice
// or registering nil has no effect. Listeners are identified with ==, so a
// listener whose value is not comparable (a slice, map or func, or a struct
// holding one) cannot be told apart and is ignored.
func (c *Core) RegisterListener(l Listener) {
	if l == nil || !reflect.ValueOf(l).Comparable() {
		return
	}
	c.listenersMu.Lock()
	defer c.listenersMu.Unlock()
	for _, existing := range c.listeners {
		if sameListener(existing, l) {
			return
		}
	}
	c.listeners = append(c.listeners, l)
}

// UnregisterListener removes l from the listener list if present
func (c *Core) UnregisterListener(l Listener) {
	if l == nil {
		return
	}
	c.listenersMu.Lock()
	defer c.listenersMu.Unlock()
	for i, existing := range c.listeners {
		if sameListener(existing, l) {
			c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
			return
		}
	}
}

func isNilProvider(p DataProvider) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// sameListener compares listeners without panicking on incomparable values
func sameListener(a, b Listener) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}

// notifyMaterialSetChanged calls every listener in registration order
func (c *Core) notifyMaterialSetChanged() {
	c.listenersMu.Lock()
	snapshot := make([]Listener, len(c.listeners))
	copy(snapshot, c.listeners)
	c.listenersMu.Unlock()

	for _, l := range snapshot {
		l.OnMaterialSetChanged(c.self)
	}
}

// WriteRecord writes the type tag, one "market" child per assignment in
// ascending item order, then the variant fields
func (c *Core) WriteRecord(rec *record.Object) {
	rec.PutString("type", string(c.kind))

	markets := c.MaterialMarkets()
	ids := make([]int, 0, len(markets))
	for id := range markets {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		child := record.New()
		markets[id].WriteRecord(child)
		child.PutInt("item", int64(id))
		rec.PutObject("market", child)
	}

	c.self.writeFields(rec)
}

func cloneStacks(in []shared.ItemStack) []shared.ItemStack {
	out := make([]shared.ItemStack, len(in))
	copy(out, in)
	return out
}
