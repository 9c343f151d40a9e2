package models

import (
	"time"

	"github.com/Saksham10-11/GSD/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the immutable record written at checkout. All figures are frozen
// from the cart summary at conversion time.
type Order struct {
	ID                  uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID              uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index"`
	GreenDelivery       bool                `gorm:"column:green_delivery;not null"`
	CarbonOffset        bool                `gorm:"column:carbon_offset;not null"`
	Subtotal            decimal.Decimal     `gorm:"column:subtotal;type:numeric(10,2);not null"`
	OrderTotal          decimal.Decimal     `gorm:"column:order_total;type:numeric(10,2);not null"`
	CarbonFootprintKg   decimal.Decimal     `gorm:"column:carbon_footprint_kg;type:numeric(8,2);not null"`
	RealizedSavingsKg   decimal.Decimal     `gorm:"column:realized_savings_kg;type:numeric(8,2);not null"`
	SustainabilityScore int                 `gorm:"column:sustainability_score;not null"`
	RecycledCount       int                 `gorm:"column:recycled_count;not null"`
	PaymentMethod       enums.PaymentMethod `gorm:"column:payment_method;not null"`
	ShippingName        string              `gorm:"column:shipping_name;not null"`
	ShippingEmail       string              `gorm:"column:shipping_email;not null"`
	ShippingAddress     string              `gorm:"column:shipping_address;not null"`
	ShippingCity        string              `gorm:"column:shipping_city;not null"`
	ShippingZipCode     string              `gorm:"column:shipping_zip_code;not null"`
	Items               []OrderLineItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time           `gorm:"column:created_at;autoCreateTime"`
}
