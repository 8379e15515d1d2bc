package models

import "gorm.io/gorm"

// Food categories.
const (
	CategoryDal        = "dal"
	CategoryRice       = "rice"
	CategoryRoti       = "roti"
	CategoryVegetables = "vegetables"
	CategoryFruits     = "fruits"
	CategoryDairy      = "dairy"
	CategorySnacks     = "snacks"
	CategoryBeverages  = "beverages"
	CategoryOther      = "other"
)

var categoryDisplayNames = map[string]string{
	CategoryDal:        "Dal/Lentils",
	CategoryRice:       "Rice",
	CategoryRoti:       "Roti/Chapati",
	CategoryVegetables: "Vegetables/Sabzi",
	CategoryFruits:     "Fruits",
	CategoryDairy:      "Dairy Products",
	CategorySnacks:     "Snacks",
	CategoryBeverages:  "Beverages",
	CategoryOther:      "Other",
}

// Food is a shared catalog entry. Users reference foods from their log
// entries but never own or modify them; the catalog is maintained by the
// seed loader (upsert by name) and admins.
type Food struct {
	gorm.Model
	Name            string  `gorm:"uniqueIndex;not null" json:"name"`
	Category        string  `gorm:"index" json:"category"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
}

// CategoryDisplay returns the human readable label for the food's category.
func (f *Food) CategoryDisplay() string {
	if label, ok := categoryDisplayNames[f.Category]; ok {
		return label
	}
	return f.Category
}
