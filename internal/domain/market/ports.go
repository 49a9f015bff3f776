package market

import "context"

// PriceRepository persists order book prices per item and solar system
type PriceRepository interface {
	Upsert(ctx context.Context, price Price) error
	FindAll(ctx context.Context) ([]Price, error)
	FindByItem(ctx context.Context, itemID int) ([]Price, error)
}
