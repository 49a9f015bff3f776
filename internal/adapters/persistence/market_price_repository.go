package persistence

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
)

// GormMarketPriceRepository implements market.PriceRepository using GORM
type GormMarketPriceRepository struct {
	db *gorm.DB
}

// NewGormMarketPriceRepository creates a new GORM market price repository
func NewGormMarketPriceRepository(db *gorm.DB) *GormMarketPriceRepository {
	return &GormMarketPriceRepository{db: db}
}

// Upsert inserts or replaces the price of an item in a solar system
func (r *GormMarketPriceRepository) Upsert(ctx context.Context, price market.Price) error {
	model := priceToModel(price)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_id"}, {Name: "system_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"sell", "buy", "updated_at"}),
	}).Create(&model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert price for item %d: %w", price.ItemID(), err)
	}
	return nil
}

// FindAll retrieves every stored price
func (r *GormMarketPriceRepository) FindAll(ctx context.Context) ([]market.Price, error) {
	var models []MarketPriceModel
	if err := r.db.WithContext(ctx).Order("item_id, system_id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}
	return modelsToPrices(models)
}

// FindByItem retrieves the prices of an item across solar systems
func (r *GormMarketPriceRepository) FindByItem(ctx context.Context, itemID int) ([]market.Price, error) {
	var models []MarketPriceModel
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).Order("system_id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find prices for item %d: %w", itemID, err)
	}
	return modelsToPrices(models)
}

func modelsToPrices(models []MarketPriceModel) ([]market.Price, error) {
	prices := make([]market.Price, 0, len(models))
	for i := range models {
		p, err := modelToPrice(&models[i])
		if err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, nil
}

func modelToPrice(model *MarketPriceModel) (market.Price, error) {
	sell, err := decimal.NewFromString(model.Sell)
	if err != nil {
		return market.Price{}, fmt.Errorf("invalid sell price for item %d: %w", model.ItemID, err)
	}
	buy, err := decimal.NewFromString(model.Buy)
	if err != nil {
		return market.Price{}, fmt.Errorf("invalid buy price for item %d: %w", model.ItemID, err)
	}
	return market.NewPrice(model.ItemID, model.SystemID, sell, buy, model.UpdatedAt)
}

func priceToModel(price market.Price) MarketPriceModel {
	return MarketPriceModel{
		ItemID:    price.ItemID(),
		SystemID:  price.System(),
		Sell:      price.Sell().String(),
		Buy:       price.Buy().String(),
		UpdatedAt: price.UpdatedAt(),
	}
}
