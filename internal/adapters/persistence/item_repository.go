package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// GormItemRepository implements catalog.ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM item repository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Save creates or updates an item
func (r *GormItemRepository) Save(ctx context.Context, item shared.Item) error {
	model := itemToModel(item)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return fmt.Errorf("failed to save item %d: %w", item.ID, err)
	}
	return nil
}

// FindByID retrieves an item by type ID
func (r *GormItemRepository) FindByID(ctx context.Context, id int) (shared.Item, error) {
	var model ItemModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return shared.Item{}, fmt.Errorf("%w: %d", catalog.ErrItemNotFound, id)
		}
		return shared.Item{}, fmt.Errorf("failed to find item: %w", result.Error)
	}
	return modelToItem(&model), nil
}

// FindAll retrieves every item ordered by ID
func (r *GormItemRepository) FindAll(ctx context.Context) ([]shared.Item, error) {
	var models []ItemModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	items := make([]shared.Item, 0, len(models))
	for i := range models {
		items = append(items, modelToItem(&models[i]))
	}
	return items, nil
}

func modelToItem(model *ItemModel) shared.Item {
	return shared.Item{
		ID:      model.ID,
		Name:    model.Name,
		GroupID: model.GroupID,
	}
}

func itemToModel(item shared.Item) ItemModel {
	return ItemModel{
		ID:      item.ID,
		Name:    item.Name,
		GroupID: item.GroupID,
	}
}
