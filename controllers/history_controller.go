package controllers

import (
	"net/http"
	"time"

	"github.com/mdaamman/caloriestracker/models"
	"github.com/mdaamman/caloriestracker/services"

	"github.com/gin-gonic/gin"
)

// parseDateOr parses a strict YYYY-MM-DD value, silently falling back when
// the value is absent or malformed. Bad date filters are not an error.
func parseDateOr(value string, fallback time.Time) time.Time {
	if value == "" {
		return models.DateOnly(fallback)
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return models.DateOnly(fallback)
	}
	return parsed
}

// mondayOf returns the Monday of the week containing t.
func mondayOf(t time.Time) time.Time {
	t = models.DateOnly(t)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// History lists one day's entries with a trailing 7-day summary and the
// dates that have entries at all (most recent 30).
func History(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	selectedDate := parseDateOr(c.Query("date"), time.Now())

	logs, err := services.LogsForDate(userID, selectedDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	allDates, err := services.DistinctLogDates(userID, 30)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	weekStart := selectedDate.AddDate(0, 0, -6)
	weeklySummary, err := services.RangeSummary(userID, weekStart, selectedDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":           logs,
		"total_calories": services.DailyTotal(logs),
		"selected_date":  selectedDate.Format("2006-01-02"),
		"all_dates":      allDates,
		"weekly_summary": weeklySummary,
	})
}

// WeeklySummary reports the week starting at ?week_start= (default: the
// Monday of the current week) against the user's daily target.
func WeeklySummary(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	weekStart := parseDateOr(c.Query("week_start"), mondayOf(time.Now()))

	report, err := services.WeeklyReportFor(userID, weekStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"week_start":      report.WeekStart,
		"week_end":        report.WeekEnd,
		"daily_summaries": report.Days,
		"weekly_total":    report.WeeklyTotal,
		"weekly_target":   report.WeeklyTarget,
		"daily_target":    report.DailyTarget,
	})
}
