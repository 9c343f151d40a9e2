package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Saksham10-11/GSD/pkg/db/models"
	"github.com/Saksham10-11/GSD/pkg/pricing"
)

// AddItemRequest is the payload for adding a product to the cart.
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// UpdateItemRequest changes the quantity of an existing line.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// OptionsRequest toggles the cart's sustainability options. Omitted fields
// keep their current value.
type OptionsRequest struct {
	GreenDelivery *bool `json:"green_delivery,omitempty"`
	CarbonOffset  *bool `json:"carbon_offset,omitempty"`
}

// CartItemDTO is one snapshot line of the cart.
type CartItemDTO struct {
	ProductID           uuid.UUID       `json:"product_id"`
	ProductName         string          `json:"product_name"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	LineTotal           decimal.Decimal `json:"line_total"`
	CarbonFootprintKg   decimal.Decimal `json:"carbon_footprint_kg"`
	SustainabilityScore int             `json:"sustainability_score"`
	RecycledMaterials   bool            `json:"recycled_materials"`
}

// SummaryDTO carries the derived cart figures.
type SummaryDTO struct {
	TotalItems          int             `json:"total_items"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	CarbonFootprintKg   decimal.Decimal `json:"carbon_footprint_kg"`
	OrderTotal          decimal.Decimal `json:"order_total"`
	PotentialSavingsKg  decimal.Decimal `json:"potential_savings_kg"`
	SustainabilityScore int             `json:"sustainability_score"`
	RecycledCount       int             `json:"recycled_count"`
}

// CartDTO is the full cart payload returned to the storefront.
type CartDTO struct {
	ID            uuid.UUID     `json:"id"`
	GreenDelivery bool          `json:"green_delivery"`
	CarbonOffset  bool          `json:"carbon_offset"`
	Items         []CartItemDTO `json:"items"`
	Summary       SummaryDTO    `json:"summary"`
}

// NewSummaryDTO maps the pricing summary to its transport form.
func NewSummaryDTO(summary *pricing.Summary) SummaryDTO {
	return SummaryDTO{
		TotalItems:          summary.TotalItems,
		Subtotal:            summary.Subtotal,
		CarbonFootprintKg:   summary.CarbonFootprintKg,
		OrderTotal:          summary.OrderTotal,
		PotentialSavingsKg:  summary.PotentialSavingsKg,
		SustainabilityScore: summary.SustainabilityScore,
		RecycledCount:       summary.RecycledCount,
	}
}

// LineItems converts stored cart items to pricing line items.
func LineItems(items []models.CartItem) []pricing.LineItem {
	lines := make([]pricing.LineItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, pricing.LineItem{
			Product: &pricing.ProductSnapshot{
				Price:               item.UnitPrice,
				CarbonFootprintKg:   item.CarbonFootprintKg,
				SustainabilityScore: item.SustainabilityScore,
				RecycledMaterials:   item.RecycledMaterials,
			},
			Quantity: item.Quantity,
		})
	}
	return lines
}

// NewCartDTO maps the cart record and its derived summary.
func NewCartDTO(record *models.CartRecord, summary *pricing.Summary) *CartDTO {
	items := make([]CartItemDTO, 0, len(record.Items))
	for _, item := range record.Items {
		items = append(items, CartItemDTO{
			ProductID:           item.ProductID,
			ProductName:         item.ProductName,
			Quantity:            item.Quantity,
			UnitPrice:           item.UnitPrice,
			LineTotal:           item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
			CarbonFootprintKg:   item.CarbonFootprintKg,
			SustainabilityScore: item.SustainabilityScore,
			RecycledMaterials:   item.RecycledMaterials,
		})
	}
	return &CartDTO{
		ID:            record.ID,
		GreenDelivery: record.GreenDelivery,
		CarbonOffset:  record.CarbonOffset,
		Items:         items,
		Summary:       NewSummaryDTO(summary),
	}
}
