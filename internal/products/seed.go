package product

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Saksham10-11/GSD/pkg/db/models"
	"github.com/Saksham10-11/GSD/pkg/enums"
)

// seedProduct is the static form of a catalog entry shipped with the app.
type seedProduct struct {
	Slug                string
	Name                string
	Description         string
	Category            enums.ProductCategory
	Price               string
	CarbonFootprintKg   string
	SustainabilityScore int
	RecycledMaterials   bool
}

// seedCatalog is the starter storefront assortment.
var seedCatalog = []seedProduct{
	{
		Slug:                "eco-speaker-1",
		Name:                "Solar Bluetooth Speaker",
		Description:         "Environmentally friendly bluetooth speaker with built-in solar charging panel",
		Category:            enums.CategoryElectronics,
		Price:               "79.00",
		CarbonFootprintKg:   "3.2",
		SustainabilityScore: 95,
		RecycledMaterials:   true,
	},
	{
		Slug:                "bamboo-desk-1",
		Name:                "Bamboo Standing Desk",
		Description:         "Adjustable height standing desk made from sustainable bamboo",
		Category:            enums.CategoryFurniture,
		Price:               "249.99",
		CarbonFootprintKg:   "10.5",
		SustainabilityScore: 90,
		RecycledMaterials:   true,
	},
	{
		Slug:                "solar-charger-1",
		Name:                "Portable Solar Charger",
		Description:         "Compact solar panel for charging devices on the go",
		Category:            enums.CategoryElectronics,
		Price:               "49.99",
		CarbonFootprintKg:   "2.8",
		SustainabilityScore: 88,
		RecycledMaterials:   false,
	},
	{
		Slug:                "water-bottle-1",
		Name:                "Insulated Water Bottle",
		Description:         "Reusable insulated water bottle made from recycled stainless steel",
		Category:            enums.CategoryHome,
		Price:               "29.99",
		CarbonFootprintKg:   "5.2",
		SustainabilityScore: 85,
		RecycledMaterials:   true,
	},
	{
		Slug:                "eco-backpack-1",
		Name:                "Recycled Polyester Backpack",
		Description:         "Durable backpack made from recycled polyester fabric",
		Category:            enums.CategoryClothing,
		Price:               "79.99",
		CarbonFootprintKg:   "6.5",
		SustainabilityScore: 80,
		RecycledMaterials:   true,
	},
	{
		Slug:                "bamboo-cutlery-1",
		Name:                "Bamboo Cutlery Set",
		Description:         "Portable bamboo cutlery set to replace disposable utensils",
		Category:            enums.CategoryHome,
		Price:               "19.99",
		CarbonFootprintKg:   "1.8",
		SustainabilityScore: 93,
		RecycledMaterials:   false,
	},
	{
		Slug:                "led-bulb-pack-1",
		Name:                "Smart LED Bulb 4-Pack",
		Description:         "Energy-efficient smart LED bulbs that connect to your home network",
		Category:            enums.CategoryElectronics,
		Price:               "39.99",
		CarbonFootprintKg:   "8.3",
		SustainabilityScore: 75,
		RecycledMaterials:   false,
	},
	{
		Slug:                "organic-sheets-1",
		Name:                "Organic Cotton Bed Sheets",
		Description:         "Soft bed sheets made from 100% organic cotton",
		Category:            enums.CategoryHome,
		Price:               "89.99",
		CarbonFootprintKg:   "7.2",
		SustainabilityScore: 87,
		RecycledMaterials:   false,
	},
	{
		Slug:                "plant-pots-1",
		Name:                "Biodegradable Plant Pots (Set of 6)",
		Description:         "Plant pots made from biodegradable materials that break down naturally",
		Category:            enums.CategoryHome,
		Price:               "24.99",
		CarbonFootprintKg:   "1.5",
		SustainabilityScore: 98,
		RecycledMaterials:   true,
	},
	{
		Slug:                "eco-laptop-1",
		Name:                "Energy-Efficient Laptop",
		Description:         "High-performance laptop with eco-friendly materials and energy efficiency",
		Category:            enums.CategoryElectronics,
		Price:               "1299.99",
		CarbonFootprintKg:   "18.5",
		SustainabilityScore: 72,
		RecycledMaterials:   true,
	},
}

// ToModel converts the seed entry to the persistence model.
func (s seedProduct) ToModel() *models.Product {
	score := s.SustainabilityScore
	return &models.Product{
		ID:                  uuid.New(),
		Slug:                s.Slug,
		Name:                s.Name,
		Description:         s.Description,
		Category:            s.Category,
		Price:               decimal.RequireFromString(s.Price),
		CarbonFootprintKg:   decimal.RequireFromString(s.CarbonFootprintKg),
		SustainabilityScore: &score,
		RecycledMaterials:   s.RecycledMaterials,
		IsActive:            true,
	}
}
