package catalog

import (
	"context"

	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// Catalog resolves catalog entities by numeric identifier.
// A miss, for whatever reason, is reported as (nil, false) and never as an error.
type Catalog interface {
	Blueprint(id int) (*Blueprint, bool)
	Decryptor(id int) (*Decryptor, bool)
	Reaction(id int) (*Reaction, bool)
	Refinable(itemID int) (*Refinable, bool)
	Schematic(id int) (*Schematic, bool)
}

// ItemRepository persists the item type table
type ItemRepository interface {
	Save(ctx context.Context, item shared.Item) error
	FindByID(ctx context.Context, id int) (shared.Item, error)
	FindAll(ctx context.Context) ([]shared.Item, error)
}
