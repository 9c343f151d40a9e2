package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLineItem freezes one cart line into the order history.
type OrderLineItem struct {
	ID                  uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID             uuid.UUID       `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID           uuid.UUID       `gorm:"column:product_id;type:uuid;not null"`
	Position            int             `gorm:"column:position;not null;default:0"`
	ProductName         string          `gorm:"column:product_name;not null"`
	Quantity            int             `gorm:"column:quantity;not null"`
	UnitPrice           decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null"`
	CarbonFootprintKg   decimal.Decimal `gorm:"column:carbon_footprint_kg;type:numeric(8,2);not null;default:0"`
	SustainabilityScore int             `gorm:"column:sustainability_score;not null;default:0"`
	RecycledMaterials   bool            `gorm:"column:recycled_materials;not null;default:false"`
	CreatedAt           time.Time       `gorm:"column:created_at;autoCreateTime"`
}
