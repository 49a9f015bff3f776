package config

import (
	"github.com/shopspring/decimal"

	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
)

// JitaSystemID is the solar system used when none is configured
const JitaSystemID = 30000142

// MarketConfig selects the markets assigned to materials that have none
type MarketConfig struct {
	// DefaultSystem is the solar system of default markets
	DefaultSystem int `mapstructure:"default_system" validate:"min=1"`

	// ProducedOrder prices produced materials: sell or buy
	ProducedOrder string `mapstructure:"produced_order" validate:"required,default_order"`

	// RequiredOrder prices required materials: sell or buy
	RequiredOrder string `mapstructure:"required_order" validate:"required,default_order"`
}

// ProducedMarket is the default market of produced materials
func (c MarketConfig) ProducedMarket() market.Market {
	return c.marketFor(c.ProducedOrder)
}

// RequiredMarket is the default market of required materials
func (c MarketConfig) RequiredMarket() market.Market {
	return c.marketFor(c.RequiredOrder)
}

func (c MarketConfig) marketFor(name string) market.Market {
	order, err := market.ParseOrder(name)
	if err != nil {
		order = market.OrderSell
	}
	return market.New(c.DefaultSystem, order, decimal.Zero)
}
