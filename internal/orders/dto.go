package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Saksham10-11/GSD/pkg/db/models"
)

// OrderLineItemDTO is one frozen line of an order.
type OrderLineItemDTO struct {
	ProductID           uuid.UUID       `json:"product_id"`
	ProductName         string          `json:"product_name"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	CarbonFootprintKg   decimal.Decimal `json:"carbon_footprint_kg"`
	SustainabilityScore int             `json:"sustainability_score"`
	RecycledMaterials   bool            `json:"recycled_materials"`
}

// OrderDTO is the order history payload returned to clients.
type OrderDTO struct {
	ID                  uuid.UUID          `json:"id"`
	GreenDelivery       bool               `json:"green_delivery"`
	CarbonOffset        bool               `json:"carbon_offset"`
	Subtotal            decimal.Decimal    `json:"subtotal"`
	OrderTotal          decimal.Decimal    `json:"order_total"`
	CarbonFootprintKg   decimal.Decimal    `json:"carbon_footprint_kg"`
	RealizedSavingsKg   decimal.Decimal    `json:"realized_savings_kg"`
	SustainabilityScore int                `json:"sustainability_score"`
	RecycledCount       int                `json:"recycled_count"`
	PaymentMethod       string             `json:"payment_method"`
	ShippingName        string             `json:"shipping_name"`
	ShippingEmail       string             `json:"shipping_email"`
	ShippingAddress     string             `json:"shipping_address"`
	ShippingCity        string             `json:"shipping_city"`
	ShippingZipCode     string             `json:"shipping_zip_code"`
	Items               []OrderLineItemDTO `json:"items"`
	CreatedAt           time.Time          `json:"created_at"`
}

// OrderPage is one page of order history plus the cursor for the next one.
// NextCursor is empty on the last page.
type OrderPage struct {
	Orders     []*OrderDTO `json:"orders"`
	NextCursor string      `json:"next_cursor,omitempty"`
}

// GreenMetricsDTO aggregates the carbon accounting across a shopper's order
// history.
type GreenMetricsDTO struct {
	TotalOrders         int             `json:"total_orders"`
	GreenDeliveryOrders int             `json:"green_delivery_orders"`
	CarbonOffsetOrders  int             `json:"carbon_offset_orders"`
	TotalFootprintKg    decimal.Decimal `json:"total_footprint_kg"`
	TotalSavedKg        decimal.Decimal `json:"total_saved_kg"`
	AvgSustainability   int             `json:"avg_sustainability_score"`
	RecycledItems       int             `json:"recycled_items"`
}

// NewOrderDTO maps the persistence model to the transport form.
func NewOrderDTO(order *models.Order) *OrderDTO {
	items := make([]OrderLineItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderLineItemDTO{
			ProductID:           item.ProductID,
			ProductName:         item.ProductName,
			Quantity:            item.Quantity,
			UnitPrice:           item.UnitPrice,
			CarbonFootprintKg:   item.CarbonFootprintKg,
			SustainabilityScore: item.SustainabilityScore,
			RecycledMaterials:   item.RecycledMaterials,
		})
	}
	return &OrderDTO{
		ID:                  order.ID,
		GreenDelivery:       order.GreenDelivery,
		CarbonOffset:        order.CarbonOffset,
		Subtotal:            order.Subtotal,
		OrderTotal:          order.OrderTotal,
		CarbonFootprintKg:   order.CarbonFootprintKg,
		RealizedSavingsKg:   order.RealizedSavingsKg,
		SustainabilityScore: order.SustainabilityScore,
		RecycledCount:       order.RecycledCount,
		PaymentMethod:       string(order.PaymentMethod),
		ShippingName:        order.ShippingName,
		ShippingEmail:       order.ShippingEmail,
		ShippingAddress:     order.ShippingAddress,
		ShippingCity:        order.ShippingCity,
		ShippingZipCode:     order.ShippingZipCode,
		Items:               items,
		CreatedAt:           order.CreatedAt,
	}
}
