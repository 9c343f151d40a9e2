// Package pricing computes the monetary and carbon-accounting figures for a
// cart snapshot. Every function is pure and safe for concurrent use; amounts
// stay in decimal form internally and are rounded half-up to two places only
// at the boundary.
package pricing

import (
	pkgerrors "github.com/Saksham10-11/GSD/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	// StandardShippingFee is charged whenever green delivery is off,
	// regardless of cart contents.
	StandardShippingFee = decimal.RequireFromString("5.00")

	// OffsetRatePerKg prices the carbon offset surcharge per kg CO2e.
	OffsetRatePerKg = decimal.RequireFromString("0.10")

	// GreenDeliverySavingKg is the footprint reduction attributed to
	// choosing green delivery over standard.
	GreenDeliverySavingKg = decimal.RequireFromString("1.5")

	// OffsetCoverage is the fraction of the cart footprint a purchased
	// offset is assumed to neutralize.
	OffsetCoverage = decimal.RequireFromString("0.8")
)

const displayPlaces = 2

// ProductSnapshot carries the product fields captured at add-to-cart time.
// Optional catalog fields default to zero/false and are never an error.
type ProductSnapshot struct {
	Price               decimal.Decimal
	CarbonFootprintKg   decimal.Decimal
	SustainabilityScore int
	RecycledMaterials   bool
}

// LineItem pairs a product snapshot with its quantity.
type LineItem struct {
	Product  *ProductSnapshot
	Quantity int
}

// Summary bundles every derived figure for a cart snapshot.
type Summary struct {
	TotalItems          int
	Subtotal            decimal.Decimal
	CarbonFootprintKg   decimal.Decimal
	OrderTotal          decimal.Decimal
	PotentialSavingsKg  decimal.Decimal
	SustainabilityScore int
	RecycledCount       int
}

// OrderTotal derives the payable total from the subtotal and the two eco
// options. Shipping is a function of the delivery flag alone, so an empty
// cart still pays the standard fee when delivery is not green.
func OrderTotal(subtotal decimal.Decimal, greenDelivery, carbonOffset bool, footprintKg decimal.Decimal) (decimal.Decimal, error) {
	if subtotal.IsNegative() {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "subtotal cannot be negative")
	}
	if footprintKg.IsNegative() {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "carbon footprint cannot be negative")
	}

	total := subtotal
	if !greenDelivery {
		total = total.Add(StandardShippingFee)
	}
	if carbonOffset {
		total = total.Add(footprintKg.Mul(OffsetRatePerKg))
	}
	return total.Round(displayPlaces), nil
}

// Subtotal sums unit price times quantity over all line items.
func Subtotal(items []LineItem) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, item := range items {
		if err := validateItem(item); err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum, nil
}

// CarbonFootprint sums the per-unit footprint over all line items. A product
// without footprint data contributes zero.
func CarbonFootprint(items []LineItem) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, item := range items {
		if err := validateItem(item); err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(item.Product.CarbonFootprintKg.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum, nil
}

// PotentialSavings reports the footprint reduction the shopper would realize
// by turning on each eco option that is currently off. An option already on
// is realized, not potential, and contributes zero.
func PotentialSavings(greenDelivery, carbonOffset bool, footprintKg decimal.Decimal) (decimal.Decimal, error) {
	if footprintKg.IsNegative() {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "carbon footprint cannot be negative")
	}

	savings := decimal.Zero
	if !greenDelivery {
		savings = savings.Add(GreenDeliverySavingKg)
	}
	if !carbonOffset {
		savings = savings.Add(footprintKg.Mul(OffsetCoverage))
	}
	return savings.Round(displayPlaces), nil
}

// RealizedSavings reports the footprint reduction already locked in by the
// eco options that are on. The mirror image of PotentialSavings: turning an
// option on moves its contribution from potential to realized.
func RealizedSavings(greenDelivery, carbonOffset bool, footprintKg decimal.Decimal) (decimal.Decimal, error) {
	if footprintKg.IsNegative() {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "carbon footprint cannot be negative")
	}

	savings := decimal.Zero
	if greenDelivery {
		savings = savings.Add(GreenDeliverySavingKg)
	}
	if carbonOffset {
		savings = savings.Add(footprintKg.Mul(OffsetCoverage))
	}
	return savings.Round(displayPlaces), nil
}

// SustainabilityScore returns the quantity-weighted average product score,
// rounded to the nearest integer. Products without a score stay in the
// weighting denominator and contribute zero to the numerator.
func SustainabilityScore(items []LineItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	weighted := decimal.Zero
	var units int64
	for _, item := range items {
		if err := validateItem(item); err != nil {
			return 0, err
		}
		qty := int64(item.Quantity)
		weighted = weighted.Add(decimal.NewFromInt(int64(item.Product.SustainabilityScore)).Mul(decimal.NewFromInt(qty)))
		units += qty
	}
	if units == 0 {
		return 0, nil
	}

	score := weighted.Div(decimal.NewFromInt(units)).Round(0).IntPart()
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(score), nil
}

// CountRecycledItems counts distinct line items, not units, whose product is
// made from recycled materials.
func CountRecycledItems(items []LineItem) (int, error) {
	count := 0
	for _, item := range items {
		if err := validateItem(item); err != nil {
			return 0, err
		}
		if item.Product.RecycledMaterials {
			count++
		}
	}
	return count, nil
}

// Summarize derives every cart figure in one pass so the order summary,
// checkout, and dashboard views cannot drift apart.
func Summarize(items []LineItem, greenDelivery, carbonOffset bool) (*Summary, error) {
	subtotal, err := Subtotal(items)
	if err != nil {
		return nil, err
	}
	footprint, err := CarbonFootprint(items)
	if err != nil {
		return nil, err
	}
	total, err := OrderTotal(subtotal, greenDelivery, carbonOffset, footprint)
	if err != nil {
		return nil, err
	}
	savings, err := PotentialSavings(greenDelivery, carbonOffset, footprint)
	if err != nil {
		return nil, err
	}
	score, err := SustainabilityScore(items)
	if err != nil {
		return nil, err
	}
	recycled, err := CountRecycledItems(items)
	if err != nil {
		return nil, err
	}

	totalItems := 0
	for _, item := range items {
		totalItems += item.Quantity
	}

	return &Summary{
		TotalItems:          totalItems,
		Subtotal:            subtotal.Round(displayPlaces),
		CarbonFootprintKg:   footprint.Round(displayPlaces),
		OrderTotal:          total,
		PotentialSavingsKg:  savings,
		SustainabilityScore: score,
		RecycledCount:       recycled,
	}, nil
}

func validateItem(item LineItem) error {
	if item.Product == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "line item is missing its product snapshot")
	}
	if item.Quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "line item quantity must be at least 1")
	}
	if item.Product.Price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "product price cannot be negative")
	}
	if item.Product.CarbonFootprintKg.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "product carbon footprint cannot be negative")
	}
	return nil
}
