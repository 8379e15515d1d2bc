package services

import (
	"errors"

	"github.com/mdaamman/caloriestracker/config"
	"github.com/mdaamman/caloriestracker/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

func GetProfile(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := config.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// SaveProfile creates or updates the profile bound to userID. The daily
// calorie target is recomputed from the submitted attributes on every save;
// callers cannot supply their own target.
func SaveProfile(userID uint, age int, gender string, heightCm, weightKg float64, activityLevel string) (*models.UserProfile, error) {
	if activityLevel == "" {
		activityLevel = models.ActivitySedentary
	}

	var profile models.UserProfile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile.UserID = userID
	profile.Age = age
	profile.Gender = gender
	profile.HeightCm = heightCm
	profile.WeightKg = weightKg
	profile.ActivityLevel = activityLevel
	profile.DailyCalorieTarget = profile.CalculateDailyCalorieNeeds()

	if err := config.DB.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// DailyTargetFor returns the user's daily calorie target, or 0 when the
// user has no profile yet.
func DailyTargetFor(userID uint) float64 {
	profile, err := GetProfile(userID)
	if err != nil {
		return 0
	}
	return profile.DailyCalorieTarget
}
