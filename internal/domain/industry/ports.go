package industry

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// DataProvider supplies the catalog and pricing data tasks are computed against.
// Implementations are expected to answer from local state: none of these calls
// take a context and none of them may block on I/O.
type DataProvider interface {
	catalog.Catalog

	// Item looks up an item by identifier
	Item(id int) (shared.Item, bool)

	// DefaultSolarSystem is the system used for markets restored without one
	DefaultSolarSystem() int

	// DefaultProducedMarket is assigned to produced materials lacking a market
	DefaultProducedMarket() market.Market

	// DefaultRequiredMarket is assigned to required materials lacking a market
	DefaultRequiredMarket() market.Market

	// MarketPrice returns the unit price of item under market m
	MarketPrice(item shared.Item, m market.Market) decimal.Decimal
}

// DocumentRepository persists encoded task records
type DocumentRepository interface {
	// Create persists a new document
	Create(ctx context.Context, doc *Document) error

	// Update persists changes to an existing document
	Update(ctx context.Context, doc *Document) error

	// FindByID retrieves a document by ID
	FindByID(ctx context.Context, id string) (*Document, error)

	// FindAll retrieves every document, newest first
	FindAll(ctx context.Context) ([]*Document, error)

	// Delete removes a document
	Delete(ctx context.Context, id string) error
}
