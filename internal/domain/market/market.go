package market

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
)

// Market is an immutable selection of where and how a material's unit price is
// sourced: sell orders or buy orders in a solar system, or a fixed manual price.
type Market struct {
	system int
	order  Order
	manual decimal.Decimal
}

// New creates a market from explicit fields
func New(system int, order Order, manual decimal.Decimal) Market {
	if !order.IsValid() {
		order = OrderSell
	}
	return Market{
		system: system,
		order:  order,
		manual: manual,
	}
}

// Default creates a sell-order market in the given solar system
func Default(system int) Market {
	return New(system, OrderSell, decimal.Zero)
}

// Manual creates a manually priced market
func Manual(system int, price decimal.Decimal) Market {
	return New(system, OrderManual, price)
}

// FromRecord restores a market from a persisted record. Missing fields fall
// back to defaultSystem, sell orders and a zero manual price. The legacy field
// name "source" is accepted when "order" is absent.
func FromRecord(rec *record.Object, defaultSystem int) Market {
	system := rec.Int("system", defaultSystem)
	code := rec.Int("order", rec.Int("source", int(OrderSell)))
	order, ok := OrderFromCode(code)
	if !ok {
		order = OrderSell
	}
	manual := rec.Decimal("manual", decimal.Zero)
	return New(system, order, manual)
}

// WriteRecord writes the market fields into rec
func (m Market) WriteRecord(rec *record.Object) {
	rec.PutInt("system", int64(m.system))
	rec.PutInt("order", int64(m.order))
	rec.PutDecimal("manual", m.manual)
}

func (m Market) System() int {
	return m.system
}

func (m Market) Order() Order {
	return m.order
}

// ManualPrice returns the fixed price, meaningful only for OrderManual
func (m Market) ManualPrice() decimal.Decimal {
	return m.manual
}

// IsManual reports whether the price is fixed rather than order sourced
func (m Market) IsManual() bool {
	return m.order == OrderManual
}

// Equal compares all three fields. Manual prices compare numerically, so 1.5
// and 1.50 are the same market.
func (m Market) Equal(other Market) bool {
	return m.system == other.system &&
		m.order == other.order &&
		m.manual.Equal(other.manual)
}

// Key is a comparable representation of a market. Two markets have the same
// key exactly when Equal reports true.
type Key struct {
	System int
	Order  Order
	Manual string
}

// Key returns the comparable key of the market, suitable for map lookups
func (m Market) Key() Key {
	return Key{
		System: m.system,
		Order:  m.order,
		Manual: m.manual.String(),
	}
}

func (m Market) String() string {
	if m.order == OrderManual {
		return fmt.Sprintf("manual %s", m.manual.String())
	}
	return fmt.Sprintf("%s@%d", m.order, m.system)
}
