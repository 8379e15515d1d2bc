package services

import (
	"errors"

	"github.com/mdaamman/caloriestracker/config"
	"github.com/mdaamman/caloriestracker/models"

	"gorm.io/gorm"
)

var ErrFoodNotFound = errors.New("food not found")

// CategoryGroup is one catalog category with its foods, ordered by name.
type CategoryGroup struct {
	Category string        `json:"category"`
	Display  string        `json:"display"`
	Foods    []models.Food `json:"foods"`
}

func GetFood(id uint) (*models.Food, error) {
	var food models.Food
	if err := config.DB.First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return &food, nil
}

func ListFoods() ([]models.Food, error) {
	var foods []models.Food
	err := config.DB.Order("category, name").Find(&foods).Error
	return foods, err
}

func CountFoods() (int64, error) {
	var count int64
	err := config.DB.Model(&models.Food{}).Count(&count).Error
	return count, err
}

// FoodsByCategory returns the catalog grouped by category, groups and foods
// both in (category, name) order.
func FoodsByCategory() ([]CategoryGroup, error) {
	foods, err := ListFoods()
	if err != nil {
		return nil, err
	}

	var groups []CategoryGroup
	for _, food := range foods {
		if len(groups) == 0 || groups[len(groups)-1].Category != food.Category {
			groups = append(groups, CategoryGroup{
				Category: food.Category,
				Display:  food.CategoryDisplay(),
			})
		}
		groups[len(groups)-1].Foods = append(groups[len(groups)-1].Foods, food)
	}
	return groups, nil
}
