package enums

import "fmt"

// ProductCategory groups catalog listings for browsing and filtering.
type ProductCategory string

const (
	CategoryElectronics ProductCategory = "electronics"
	CategoryFurniture   ProductCategory = "furniture"
	CategoryHome        ProductCategory = "home"
	CategoryClothing    ProductCategory = "clothing"
)

var validProductCategories = []ProductCategory{
	CategoryElectronics,
	CategoryFurniture,
	CategoryHome,
	CategoryClothing,
}

// String implements fmt.Stringer.
func (p ProductCategory) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProductCategory.
func (p ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
