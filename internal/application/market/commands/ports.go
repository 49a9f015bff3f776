package commands

import (
	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// ItemSink receives items as they are saved
type ItemSink interface {
	PutItem(item shared.Item)
}

// PriceSink receives prices as they are saved
type PriceSink interface {
	SetPrice(price market.Price) error
}
