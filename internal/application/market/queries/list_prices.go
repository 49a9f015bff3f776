package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/eveindustry-go/internal/application/common"
	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
)

// ListPricesQuery lists stored prices, optionally for one item
type ListPricesQuery struct {
	ItemID int // zero lists every item
}

// ListPricesResponse carries the prices
type ListPricesResponse struct {
	Prices []market.Price
}

// ListPricesHandler handles ListPricesQuery
type ListPricesHandler struct {
	priceRepo market.PriceRepository
}

// NewListPricesHandler creates a new ListPricesHandler
func NewListPricesHandler(priceRepo market.PriceRepository) *ListPricesHandler {
	return &ListPricesHandler{priceRepo: priceRepo}
}

// Handle executes the list prices query
func (h *ListPricesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ListPricesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListPricesQuery")
	}

	var (
		prices []market.Price
		err    error
	)
	if query.ItemID > 0 {
		prices, err = h.priceRepo.FindByItem(ctx, query.ItemID)
	} else {
		prices, err = h.priceRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}
	return &ListPricesResponse{Prices: prices}, nil
}
