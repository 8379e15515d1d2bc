package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/mdaamman/caloriestracker/models"
	"github.com/mdaamman/caloriestracker/services"

	"github.com/gin-gonic/gin"
)

// Dashboard shows today's consumption against the daily target plus a
// trailing 7-day summary. Users without a profile are sent to the profile
// form first.
func Dashboard(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	profile, err := services.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusOK, gin.H{
				"redirect": "/profile/",
				"warning":  "Please complete your profile to see calorie goals.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	today := models.DateOnly(time.Now())

	todayLogs, err := services.LogsForDate(userID, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	consumed := services.DailyTotal(todayLogs)
	remaining, percentage := services.Progress(consumed, profile.DailyCalorieTarget)

	recentLogs, err := services.RecentLogs(userID, 5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	weekStart := today.AddDate(0, 0, -6)
	weeklyLogs, err := services.RangeSummary(userID, weekStart, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":            profile,
		"calorie_target":     models.Round2(profile.DailyCalorieTarget),
		"calories_consumed":  consumed,
		"remaining_calories": remaining,
		"percentage":         percentage,
		"today_logs":         todayLogs,
		"recent_logs":        recentLogs,
		"weekly_logs":        weeklyLogs,
		"today":              today.Format("2006-01-02"),
	})
}
