package services

import (
	"sort"
	"time"

	"github.com/mdaamman/caloriestracker/models"
)

// DailySummary is one day's aggregate over a user's food log.
type DailySummary struct {
	Date          string  `json:"date"`
	TotalCalories float64 `json:"total_calories"`
	EntryCount    int     `json:"entry_count"`
}

// WeeklyDay extends DailySummary with the difference from the daily target.
type WeeklyDay struct {
	Date          string  `json:"date"`
	TotalCalories float64 `json:"total_calories"`
	EntryCount    int     `json:"entry_count"`
	Difference    float64 `json:"difference"`
}

// WeeklyReport covers week_start..week_start+6. WeeklyTotal sums only the
// days that have at least one entry; days without entries do not appear in
// Days at all.
type WeeklyReport struct {
	WeekStart    string      `json:"week_start"`
	WeekEnd      string      `json:"week_end"`
	Days         []WeeklyDay `json:"daily_summaries"`
	WeeklyTotal  float64     `json:"weekly_total"`
	WeeklyTarget float64     `json:"weekly_target"`
	DailyTarget  float64     `json:"daily_target"`
}

// DailyTotal sums the calories of the given entries, rounded to 2dp.
func DailyTotal(logs []models.DailyFoodLog) float64 {
	var total float64
	for _, l := range logs {
		total += l.Calories
	}
	return models.Round2(total)
}

// SummarizeByDate groups entries by calendar date, summing calories and
// counting entries per date, ascending. Dates without entries are absent
// from the result; there is no zero-filling.
func SummarizeByDate(logs []models.DailyFoodLog) []DailySummary {
	byDate := make(map[string]*DailySummary)
	for _, l := range logs {
		key := l.Date.Format("2006-01-02")
		day, ok := byDate[key]
		if !ok {
			day = &DailySummary{Date: key}
			byDate[key] = day
		}
		day.TotalCalories += l.Calories
		day.EntryCount++
	}

	keys := make([]string, 0, len(byDate))
	for k := range byDate {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	summaries := make([]DailySummary, 0, len(keys))
	for _, k := range keys {
		day := byDate[k]
		day.TotalCalories = models.Round2(day.TotalCalories)
		summaries = append(summaries, *day)
	}
	return summaries
}

// BuildWeeklyReport assembles the per-day and whole-week aggregates for the
// seven days starting at weekStart. dailyTarget is 0 for users without a
// profile; differences are still reported against it.
func BuildWeeklyReport(logs []models.DailyFoodLog, weekStart time.Time, dailyTarget float64) WeeklyReport {
	weekStart = models.DateOnly(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 6)

	report := WeeklyReport{
		WeekStart:    weekStart.Format("2006-01-02"),
		WeekEnd:      weekEnd.Format("2006-01-02"),
		Days:         []WeeklyDay{},
		WeeklyTarget: models.Round2(dailyTarget * 7),
		DailyTarget:  models.Round2(dailyTarget),
	}

	var weeklyTotal float64
	for _, day := range SummarizeByDate(logs) {
		report.Days = append(report.Days, WeeklyDay{
			Date:          day.Date,
			TotalCalories: day.TotalCalories,
			EntryCount:    day.EntryCount,
			Difference:    models.Round2(day.TotalCalories - dailyTarget),
		})
		weeklyTotal += day.TotalCalories
	}
	report.WeeklyTotal = models.Round2(weeklyTotal)
	return report
}

// Progress derives the dashboard numbers for one day. Remaining never goes
// negative, percentage is capped at 100 and is 0 when there is no target.
func Progress(consumed, target float64) (remaining, percentage float64) {
	remaining = target - consumed
	if remaining < 0 {
		remaining = 0
	}
	if target > 0 {
		percentage = consumed / target * 100
		if percentage > 100 {
			percentage = 100
		}
	}
	return models.Round2(remaining), models.Round1(percentage)
}

// DailyTotalForDate fetches and sums one day of the user's log.
func DailyTotalForDate(userID uint, date time.Time) (float64, error) {
	logs, err := LogsForDate(userID, date)
	if err != nil {
		return 0, err
	}
	return DailyTotal(logs), nil
}

// RangeSummary fetches the user's entries for an inclusive range and
// groups them by date.
func RangeSummary(userID uint, start, end time.Time) ([]DailySummary, error) {
	logs, err := LogsInRange(userID, start, end)
	if err != nil {
		return nil, err
	}
	return SummarizeByDate(logs), nil
}

// WeeklyReportFor builds the weekly report for the week starting at
// weekStart, using the user's current daily target (0 without a profile).
func WeeklyReportFor(userID uint, weekStart time.Time) (WeeklyReport, error) {
	weekEnd := models.DateOnly(weekStart).AddDate(0, 0, 6)
	logs, err := LogsInRange(userID, weekStart, weekEnd)
	if err != nil {
		return WeeklyReport{}, err
	}
	return BuildWeeklyReport(logs, weekStart, DailyTargetFor(userID)), nil
}
