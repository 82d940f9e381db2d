package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem holds the stock-tracked fields shared by pizzas and extras.
// Once a row exists, QuantityInStock, IsAvailable and Disabled are written only by the stock ledger.
type StockItem struct {
	Name            string `gorm:"size:100;not null" json:"name"`
	QuantityInStock int    `gorm:"not null;default:0;check:quantity_in_stock >= 0" json:"quantity_in_stock"`
	IsAvailable     bool   `gorm:"not null;default:false" json:"is_available"`
	// Disabled marks an item as manually withdrawn from sale regardless of stock.
	Disabled bool `gorm:"not null;default:false" json:"disabled"`
}

// Pizza represents a pizza with its properties
type Pizza struct {
	ID uint `gorm:"primaryKey" json:"id"`
	StockItem
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"base_price"`
	ImageURL    string          `json:"image_url,omitempty"`
	Ingredients []Ingredient    `gorm:"many2many:pizza_ingredients" json:"ingredients,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// UnitPrice is the catalog price of a single pizza.
func (p Pizza) UnitPrice() decimal.Decimal {
	return p.BasePrice
}

// Extra is a stock-tracked add-on that can be ordered with any pizza.
type Extra struct {
	ID uint `gorm:"primaryKey" json:"id"`
	StockItem
	Price     decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (e Extra) UnitPrice() decimal.Decimal {
	return e.Price
}

// Ingredient is descriptive only; it carries no stock.
type Ingredient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// CatalogEntry is a flat read-only view over pizzas and extras.
type CatalogEntry struct {
	Kind        string          `json:"kind"`
	ItemID      uint            `json:"item_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"is_available"`
}
