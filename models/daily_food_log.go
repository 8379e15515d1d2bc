package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// DailyFoodLog records one consumption event: a quantity of one food eaten
// by one user on one date. Calories are derived from the quantity and the
// food's calories per 100g; the write path recomputes them on every save.
// Multiple entries for the same user, food and date are allowed.
type DailyFoodLog struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	FoodID    uint      `gorm:"index;not null" json:"food_id"`
	Food      Food      `json:"food"`
	QuantityG float64   `json:"quantity_g"`
	Date      time.Time `gorm:"type:date;index" json:"date"`
	Calories  float64   `json:"calories"`
}

// CalculateCalories derives the calorie value of a log entry:
// quantity/100 * calories per 100g, rounded to two decimals.
func CalculateCalories(quantityG, caloriesPer100g float64) float64 {
	return Round2(quantityG / 100 * caloriesPer100g)
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// DateOnly strips the time of day, keeping the calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
