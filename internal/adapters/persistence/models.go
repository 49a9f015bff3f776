package persistence

import (
	"time"
)

// ItemModel represents the items table
type ItemModel struct {
	ID      int    `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name    string `gorm:"column:name;not null"`
	GroupID int    `gorm:"column:group_id;not null;default:0"`
}

func (ItemModel) TableName() string {
	return "items"
}

// MarketPriceModel represents the market_prices table
// Primary key is (item_id, system_id); prices are decimal strings
type MarketPriceModel struct {
	ItemID    int       `gorm:"column:item_id;primaryKey;autoIncrement:false"`
	SystemID  int       `gorm:"column:system_id;primaryKey;autoIncrement:false"`
	Sell      string    `gorm:"column:sell;type:text;not null;default:'0'"`
	Buy       string    `gorm:"column:buy;type:text;not null;default:'0'"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (MarketPriceModel) TableName() string {
	return "market_prices"
}

// TaskDocumentModel represents the task_documents table
// Body holds the encoded task record
type TaskDocumentModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Kind      string    `gorm:"column:kind;not null;index"`
	Body      string    `gorm:"column:body;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (TaskDocumentModel) TableName() string {
	return "task_documents"
}
