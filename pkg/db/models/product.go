package models

import (
	"time"

	"github.com/Saksham10-11/GSD/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog listing. SustainabilityScore and ImageURL are
// optional; the defaulting rules for missing eco data live in pkg/pricing.
type Product struct {
	ID                  uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug                string                `gorm:"column:slug;uniqueIndex;not null"`
	Name                string                `gorm:"column:name;not null"`
	Description         string                `gorm:"column:description;not null"`
	Category            enums.ProductCategory `gorm:"column:category;not null"`
	Price               decimal.Decimal       `gorm:"column:price;type:numeric(10,2);not null"`
	CarbonFootprintKg   decimal.Decimal       `gorm:"column:carbon_footprint_kg;type:numeric(8,2);not null;default:0"`
	SustainabilityScore *int                  `gorm:"column:sustainability_score"`
	RecycledMaterials   bool                  `gorm:"column:recycled_materials;not null;default:false"`
	ImageURL            *string               `gorm:"column:image_url"`
	IsActive            bool                  `gorm:"column:is_active;not null;default:true"`
	CreatedAt           time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
