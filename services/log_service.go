package services

import (
	"errors"
	"time"

	"github.com/mdaamman/caloriestracker/config"
	"github.com/mdaamman/caloriestracker/models"

	"gorm.io/gorm"
)

var ErrLogNotFound = errors.New("food log entry not found")

// AddFoodLog validates the food reference, computes the entry's calories
// and persists it for the given user. The calorie value is always derived
// here; it is never taken from input.
func AddFoodLog(userID, foodID uint, quantityG float64, date time.Time) (*models.DailyFoodLog, error) {
	food, err := GetFood(foodID)
	if err != nil {
		return nil, err
	}

	entry := models.DailyFoodLog{
		UserID:    userID,
		FoodID:    food.ID,
		Food:      *food,
		QuantityG: quantityG,
		Date:      models.DateOnly(date),
	}
	entry.Calories = models.CalculateCalories(entry.QuantityG, food.CaloriesPer100g)

	// the catalog row is reference data; never write through the association
	if err := config.DB.Omit("Food").Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetFoodLog looks an entry up by id and owner. A mismatch on either is
// reported as not found, so users cannot probe other users' entries.
func GetFoodLog(userID, logID uint) (*models.DailyFoodLog, error) {
	var entry models.DailyFoodLog
	err := config.DB.Preload("Food").
		Where("id = ? AND user_id = ?", logID, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func DeleteFoodLog(userID, logID uint) error {
	entry, err := GetFoodLog(userID, logID)
	if err != nil {
		return err
	}
	return config.DB.Delete(entry).Error
}

// LogsForDate returns the user's entries for one date, newest first.
func LogsForDate(userID uint, date time.Time) ([]models.DailyFoodLog, error) {
	var logs []models.DailyFoodLog
	err := config.DB.Preload("Food").
		Where("user_id = ? AND date = ?", userID, models.DateOnly(date)).
		Order("created_at desc").
		Find(&logs).Error
	return logs, err
}

// LogsInRange returns the user's entries for an inclusive date range,
// ordered by date then insertion time.
func LogsInRange(userID uint, start, end time.Time) ([]models.DailyFoodLog, error) {
	var logs []models.DailyFoodLog
	err := config.DB.Preload("Food").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, models.DateOnly(start), models.DateOnly(end)).
		Order("date, created_at").
		Find(&logs).Error
	return logs, err
}

// RecentLogs returns the user's latest entries by insertion time.
func RecentLogs(userID uint, limit int) ([]models.DailyFoodLog, error) {
	var logs []models.DailyFoodLog
	err := config.DB.Preload("Food").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// DistinctLogDates returns the distinct dates the user has logged on,
// most recent first.
func DistinctLogDates(userID uint, limit int) ([]string, error) {
	var dates []time.Time
	err := config.DB.Model(&models.DailyFoodLog{}).
		Where("user_id = ?", userID).
		Distinct("date").
		Order("date desc").
		Limit(limit).
		Pluck("date", &dates).Error
	if err != nil {
		return nil, err
	}

	formatted := make([]string, 0, len(dates))
	for _, d := range dates {
		formatted = append(formatted, d.Format("2006-01-02"))
	}
	return formatted, nil
}
