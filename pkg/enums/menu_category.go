package enums

import "fmt"

// MenuCategory is the closed set of menu sections.
type MenuCategory string

const (
	MenuCategoryStarter  MenuCategory = "starter"
	MenuCategoryMain     MenuCategory = "main"
	MenuCategoryDessert  MenuCategory = "dessert"
	MenuCategoryBeverage MenuCategory = "beverage"
)

// MenuCategoryAll is the identity filter, not a stored category.
const MenuCategoryAll = "all"

var validMenuCategories = []MenuCategory{
	MenuCategoryStarter,
	MenuCategoryMain,
	MenuCategoryDessert,
	MenuCategoryBeverage,
}

// String implements fmt.Stringer.
func (m MenuCategory) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MenuCategory.
func (m MenuCategory) IsValid() bool {
	for _, candidate := range validMenuCategories {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMenuCategory converts the raw string to MenuCategory.
func ParseMenuCategory(value string) (MenuCategory, error) {
	for _, candidate := range validMenuCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid menu category %q", value)
}
