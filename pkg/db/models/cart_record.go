package models

import (
	"time"

	"github.com/Saksham10-11/GSD/pkg/enums"
	"github.com/google/uuid"
)

// CartRecord is the single active cart per user. Derived totals are never
// stored here; they are recomputed from the items through pkg/pricing.
type CartRecord struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID        uuid.UUID        `gorm:"column:user_id;type:uuid;not null"`
	Status        enums.CartStatus `gorm:"column:status;not null;default:'active'"`
	GreenDelivery bool             `gorm:"column:green_delivery;not null;default:false"`
	CarbonOffset  bool             `gorm:"column:carbon_offset;not null;default:false"`
	Items         []CartItem       `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	ConvertedAt   *time.Time       `gorm:"column:converted_at"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
