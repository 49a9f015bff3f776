package commands

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/andrescamacho/eveindustry-go/internal/application/common"
	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// SetPriceCommand records the order book price of an item in a solar system
type SetPriceCommand struct {
	ItemID int
	System int
	Sell   decimal.Decimal
	Buy    decimal.Decimal
}

// SetPriceResponse carries the saved price
type SetPriceResponse struct {
	Price market.Price
}

// SetPriceHandler handles SetPriceCommand
type SetPriceHandler struct {
	itemRepo  catalog.ItemRepository
	priceRepo market.PriceRepository
	sink      PriceSink
	clock     shared.Clock
}

// NewSetPriceHandler creates a new SetPriceHandler. sink may be nil; a nil
// clock reads the system time.
func NewSetPriceHandler(
	itemRepo catalog.ItemRepository,
	priceRepo market.PriceRepository,
	sink PriceSink,
	clock shared.Clock,
) *SetPriceHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &SetPriceHandler{
		itemRepo:  itemRepo,
		priceRepo: priceRepo,
		sink:      sink,
		clock:     clock,
	}
}

// Handle executes the set price command
func (h *SetPriceHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SetPriceCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SetPriceCommand")
	}

	// Prices are only kept for known items
	if _, err := h.itemRepo.FindByID(ctx, cmd.ItemID); err != nil {
		return nil, err
	}

	price, err := market.NewPrice(cmd.ItemID, cmd.System, cmd.Sell, cmd.Buy, h.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := h.priceRepo.Upsert(ctx, price); err != nil {
		return nil, err
	}
	if h.sink != nil {
		if err := h.sink.SetPrice(price); err != nil {
			return nil, err
		}
	}

	common.LoggerFromContext(ctx).Log("INFO", "price saved", map[string]interface{}{
		"item_id": price.ItemID(),
		"system":  price.System(),
		"sell":    price.Sell().String(),
		"buy":     price.Buy().String(),
	})
	return &SetPriceResponse{Price: price}, nil
}
