package models

import (
	"gorm.io/gorm"
)

// Gender choices.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Activity level choices for the daily calorie calculation.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

// activityMultipliers scales BMR to total daily energy expenditure.
var activityMultipliers = map[string]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// UserProfile stores a user's physical attributes and the derived daily
// calorie target. The target is always recomputed by the write path before
// persisting; it is never accepted from input.
type UserProfile struct {
	gorm.Model
	UserID             uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Age                int     `json:"age"`
	Gender             string  `json:"gender"`
	HeightCm           float64 `json:"height_cm"`
	WeightKg           float64 `json:"weight_kg"`
	ActivityLevel      string  `gorm:"default:sedentary" json:"activity_level"`
	DailyCalorieTarget float64 `json:"daily_calorie_target"`
}

// CalculateBMR computes the Basal Metabolic Rate using the Mifflin-St Jeor
// equation: BMR = 10*weight(kg) + 6.25*height(cm) - 5*age + s, where
// s = +5 for males and -161 for females. Input bounds are the caller's
// responsibility; the formula computes whatever it is given.
func (p *UserProfile) CalculateBMR() float64 {
	s := -161.0
	if p.Gender == GenderMale {
		s = 5
	}
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age) + s
	return Round2(bmr)
}

// CalculateDailyCalorieNeeds scales the BMR by the activity multiplier.
// Unknown activity levels fall back to sedentary (1.2).
func (p *UserProfile) CalculateDailyCalorieNeeds() float64 {
	multiplier, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		multiplier = activityMultipliers[ActivitySedentary]
	}
	return Round2(p.CalculateBMR() * multiplier)
}
