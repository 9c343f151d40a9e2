package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem snapshots the product at add-to-cart time so later catalog edits
// cannot change what the shopper already priced. Unique per (cart, product);
// Position preserves insertion order.
type CartItem struct {
	ID                  uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CartID              uuid.UUID       `gorm:"column:cart_id;type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	ProductID           uuid.UUID       `gorm:"column:product_id;type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	Position            int             `gorm:"column:position;not null"`
	Quantity            int             `gorm:"column:quantity;not null"`
	ProductName         string          `gorm:"column:product_name;not null"`
	UnitPrice           decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null"`
	CarbonFootprintKg   decimal.Decimal `gorm:"column:carbon_footprint_kg;type:numeric(8,2);not null;default:0"`
	SustainabilityScore int             `gorm:"column:sustainability_score;not null;default:0"`
	RecycledMaterials   bool            `gorm:"column:recycled_materials;not null;default:false"`
	CreatedAt           time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
