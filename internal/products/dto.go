package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Saksham10-11/GSD/pkg/db/models"
)

// ProductDTO represents the catalog payload returned to clients.
type ProductDTO struct {
	ID                  uuid.UUID       `json:"id"`
	Slug                string          `json:"slug"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Category            string          `json:"category"`
	Price               decimal.Decimal `json:"price"`
	CarbonFootprintKg   decimal.Decimal `json:"carbon_footprint_kg"`
	SustainabilityScore *int            `json:"sustainability_score,omitempty"`
	RecycledMaterials   bool            `json:"recycled_materials"`
	ImageURL            *string         `json:"image_url,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// NewProductDTO builds a DTO from the persisted model.
func NewProductDTO(product *models.Product) *ProductDTO {
	return &ProductDTO{
		ID:                  product.ID,
		Slug:                product.Slug,
		Name:                product.Name,
		Description:         product.Description,
		Category:            string(product.Category),
		Price:               product.Price,
		CarbonFootprintKg:   product.CarbonFootprintKg,
		SustainabilityScore: product.SustainabilityScore,
		RecycledMaterials:   product.RecycledMaterials,
		ImageURL:            product.ImageURL,
		CreatedAt:           product.CreatedAt,
		UpdatedAt:           product.UpdatedAt,
	}
}
