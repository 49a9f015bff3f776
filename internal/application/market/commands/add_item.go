package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/andrescamacho/eveindustry-go/internal/application/common"
	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// AddItemCommand adds or renames an item
type AddItemCommand struct {
	ID      int
	Name    string
	GroupID int
}

// AddItemResponse carries the saved item
type AddItemResponse struct {
	Item shared.Item
}

// AddItemHandler handles AddItemCommand
type AddItemHandler struct {
	itemRepo catalog.ItemRepository
	sink     ItemSink
}

// NewAddItemHandler creates a new AddItemHandler. sink may be nil.
func NewAddItemHandler(itemRepo catalog.ItemRepository, sink ItemSink) *AddItemHandler {
	return &AddItemHandler{itemRepo: itemRepo, sink: sink}
}

// Handle executes the add item command
func (h *AddItemHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AddItemCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AddItemCommand")
	}

	if cmd.ID < 0 {
		return nil, shared.NewValidationError("id", "cannot be negative")
	}
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, shared.NewValidationError("name", "is required")
	}

	item := shared.Item{ID: cmd.ID, Name: name, GroupID: cmd.GroupID}
	if err := h.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	if h.sink != nil {
		h.sink.PutItem(item)
	}

	common.LoggerFromContext(ctx).Log("INFO", "item saved", map[string]interface{}{
		"item_id": item.ID,
		"name":    item.Name,
	})
	return &AddItemResponse{Item: item}, nil
}
