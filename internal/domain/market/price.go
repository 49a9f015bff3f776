package market

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is the best sell and buy order price of an item in a solar system
type Price struct {
	itemID    int
	system    int
	sell      decimal.Decimal
	buy       decimal.Decimal
	updatedAt time.Time
}

// NewPrice creates a price snapshot. Negative prices are rejected.
func NewPrice(itemID, system int, sell, buy decimal.Decimal, updatedAt time.Time) (Price, error) {
	if sell.IsNegative() || buy.IsNegative() {
		return Price{}, ErrInvalidPrice
	}
	return Price{
		itemID:    itemID,
		system:    system,
		sell:      sell,
		buy:       buy,
		updatedAt: updatedAt,
	}, nil
}

func (p Price) ItemID() int           { return p.itemID }
func (p Price) System() int           { return p.system }
func (p Price) Sell() decimal.Decimal { return p.sell }
func (p Price) Buy() decimal.Decimal  { return p.buy }
func (p Price) UpdatedAt() time.Time  { return p.updatedAt }

// ForOrder returns the price matching a sell or buy order. Manual orders are
// not sourced from the order book and yield zero.
func (p Price) ForOrder(o Order) decimal.Decimal {
	switch o {
	case OrderSell:
		return p.sell
	case OrderBuy:
		return p.buy
	default:
		return decimal.Zero
	}
}
