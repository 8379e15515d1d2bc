package services

import (
	"errors"

	"github.com/mdaamman/caloriestracker/config"
	"github.com/mdaamman/caloriestracker/models"

	"gorm.io/gorm"
)

// indianFoods is the preloaded catalog. Calorie values are approximate
// per 100g.
var indianFoods = []models.Food{
	{Name: "Toor Dal (Cooked)", Category: models.CategoryDal, CaloriesPer100g: 100},
	{Name: "Moong Dal (Cooked)", Category: models.CategoryDal, CaloriesPer100g: 105},
	{Name: "Masoor Dal (Cooked)", Category: models.CategoryDal, CaloriesPer100g: 100},
	{Name: "Chana Dal (Cooked)", Category: models.CategoryDal, CaloriesPer100g: 120},
	{Name: "Urad Dal (Cooked)", Category: models.CategoryDal, CaloriesPer100g: 110},
	{Name: "Rajma (Kidney Beans)", Category: models.CategoryDal, CaloriesPer100g: 127},

	{Name: "White Rice (Cooked)", Category: models.CategoryRice, CaloriesPer100g: 130},
	{Name: "Brown Rice (Cooked)", Category: models.CategoryRice, CaloriesPer100g: 111},
	{Name: "Basmati Rice (Cooked)", Category: models.CategoryRice, CaloriesPer100g: 130},
	{Name: "Jeera Rice (Cooked)", Category: models.CategoryRice, CaloriesPer100g: 140},
	{Name: "Biryani Rice", Category: models.CategoryRice, CaloriesPer100g: 180},

	{Name: "Roti/Chapati (Wheat)", Category: models.CategoryRoti, CaloriesPer100g: 297},
	{Name: "Phulka", Category: models.CategoryRoti, CaloriesPer100g: 280},
	{Name: "Naan", Category: models.CategoryRoti, CaloriesPer100g: 310},
	{Name: "Paratha", Category: models.CategoryRoti, CaloriesPer100g: 326},
	{Name: "Bhatura", Category: models.CategoryRoti, CaloriesPer100g: 350},

	{Name: "Aloo Sabzi (Potato)", Category: models.CategoryVegetables, CaloriesPer100g: 150},
	{Name: "Bhindi Sabzi (Okra)", Category: models.CategoryVegetables, CaloriesPer100g: 80},
	{Name: "Baingan Bharta (Eggplant)", Category: models.CategoryVegetables, CaloriesPer100g: 90},
	{Name: "Gobi Sabzi (Cauliflower)", Category: models.CategoryVegetables, CaloriesPer100g: 60},
	{Name: "Mix Vegetable Sabzi", Category: models.CategoryVegetables, CaloriesPer100g: 70},
	{Name: "Paneer Sabzi", Category: models.CategoryVegetables, CaloriesPer100g: 200},
	{Name: "Dal Makhani", Category: models.CategoryVegetables, CaloriesPer100g: 180},
	{Name: "Chana Masala", Category: models.CategoryVegetables, CaloriesPer100g: 140},
	{Name: "Palak Paneer", Category: models.CategoryVegetables, CaloriesPer100g: 190},
	{Name: "Matar Paneer", Category: models.CategoryVegetables, CaloriesPer100g: 180},

	{Name: "Banana", Category: models.CategoryFruits, CaloriesPer100g: 89},
	{Name: "Apple", Category: models.CategoryFruits, CaloriesPer100g: 52},
	{Name: "Mango", Category: models.CategoryFruits, CaloriesPer100g: 60},
	{Name: "Orange", Category: models.CategoryFruits, CaloriesPer100g: 47},
	{Name: "Guava", Category: models.CategoryFruits, CaloriesPer100g: 68},
	{Name: "Papaya", Category: models.CategoryFruits, CaloriesPer100g: 43},
	{Name: "Watermelon", Category: models.CategoryFruits, CaloriesPer100g: 30},
	{Name: "Pomegranate", Category: models.CategoryFruits, CaloriesPer100g: 83},

	{Name: "Milk (Full Cream)", Category: models.CategoryDairy, CaloriesPer100g: 61},
	{Name: "Milk (Skimmed)", Category: models.CategoryDairy, CaloriesPer100g: 34},
	{Name: "Curd/Yogurt", Category: models.CategoryDairy, CaloriesPer100g: 59},
	{Name: "Paneer (Cottage Cheese)", Category: models.CategoryDairy, CaloriesPer100g: 265},
	{Name: "Ghee", Category: models.CategoryDairy, CaloriesPer100g: 900},
	{Name: "Butter", Category: models.CategoryDairy, CaloriesPer100g: 717},
	{Name: "Cheese", Category: models.CategoryDairy, CaloriesPer100g: 402},

	{Name: "Samosa", Category: models.CategorySnacks, CaloriesPer100g: 262},
	{Name: "Pakora", Category: models.CategorySnacks, CaloriesPer100g: 200},
	{Name: "Dhokla", Category: models.CategorySnacks, CaloriesPer100g: 160},
	{Name: "Vada Pav", Category: models.CategorySnacks, CaloriesPer100g: 280},
	{Name: "Pav Bhaji", Category: models.CategorySnacks, CaloriesPer100g: 180},
	{Name: "Dosa", Category: models.CategorySnacks, CaloriesPer100g: 130},
	{Name: "Idli", Category: models.CategorySnacks, CaloriesPer100g: 39},
	{Name: "Upma", Category: models.CategorySnacks, CaloriesPer100g: 120},

	{Name: "Chai (Tea)", Category: models.CategoryBeverages, CaloriesPer100g: 30},
	{Name: "Coffee", Category: models.CategoryBeverages, CaloriesPer100g: 2},
	{Name: "Lassi (Sweet)", Category: models.CategoryBeverages, CaloriesPer100g: 90},
	{Name: "Lassi (Salted)", Category: models.CategoryBeverages, CaloriesPer100g: 50},
	{Name: "Buttermilk (Chaas)", Category: models.CategoryBeverages, CaloriesPer100g: 25},
	{Name: "Fresh Juice (Orange)", Category: models.CategoryBeverages, CaloriesPer100g: 45},
	{Name: "Fresh Juice (Mango)", Category: models.CategoryBeverages, CaloriesPer100g: 60},
}

// SeedFoods loads the food catalog, upserting by name: existing rows get
// their category and calorie value refreshed, so re-running the seed never
// creates duplicates.
func SeedFoods() (created, updated int, err error) {
	for _, item := range indianFoods {
		var existing models.Food
		findErr := config.DB.Where("name = ?", item.Name).First(&existing).Error
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			if err = config.DB.Create(&item).Error; err != nil {
				return created, updated, err
			}
			created++
			continue
		}
		if findErr != nil {
			return created, updated, findErr
		}

		existing.Category = item.Category
		existing.CaloriesPer100g = item.CaloriesPer100g
		if err = config.DB.Save(&existing).Error; err != nil {
			return created, updated, err
		}
		updated++
	}
	return created, updated, nil
}
