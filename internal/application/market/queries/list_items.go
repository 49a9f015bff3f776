package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/eveindustry-go/internal/application/common"
	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// ListItemsQuery lists every known item
type ListItemsQuery struct{}

// ListItemsResponse carries the items ordered by ID
type ListItemsResponse struct {
	Items []shared.Item
}

// ListItemsHandler handles ListItemsQuery
type ListItemsHandler struct {
	itemRepo catalog.ItemRepository
}

// NewListItemsHandler creates a new ListItemsHandler
func NewListItemsHandler(itemRepo catalog.ItemRepository) *ListItemsHandler {
	return &ListItemsHandler{itemRepo: itemRepo}
}

// Handle executes the list items query
func (h *ListItemsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ListItemsQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListItemsQuery")
	}
	items, err := h.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return &ListItemsResponse{Items: items}, nil
}
