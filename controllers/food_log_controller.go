package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/mdaamman/caloriestracker/services"

	"github.com/gin-gonic/gin"
)

type FoodLogInput struct {
	FoodID    uint    `json:"food_id" binding:"required"`
	QuantityG float64 `json:"quantity_g" binding:"required,gte=0.01"`
	Date      string  `json:"date"` // YYYY-MM-DD, defaults to today
}

// GetAddFood returns the catalog grouped by category for the selection UI.
func GetAddFood(c *gin.Context) {
	groups, err := services.FoodsByCategory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	count, err := services.CountFoods()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"foods_by_category": groups,
		"foods_count":       count,
	})
}

// AddFoodLog records a consumption entry for the session's user.
func AddFoodLog(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input FoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
			return
		}
		date = parsed
	}

	entry, err := services.AddFoodLog(userID, input.FoodID, input.QuantityG, date)
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  fmt.Sprintf("Added %s (%gg) - %g calories", entry.Food.Name, entry.QuantityG, entry.Calories),
		"log":      entry,
		"redirect": "/dashboard/",
	})
}

// GetDeleteLog returns the entry for the delete confirmation view. The
// lookup filters by owner, so other users' entries read as not found.
func GetDeleteLog(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	logID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrLogNotFound.Error()})
		return
	}

	entry, err := services.GetFoodLog(userID, uint(logID))
	if err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"food_log": entry})
}

// DeleteLog removes the entry after the ownership check.
func DeleteLog(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	logID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrLogNotFound.Error()})
		return
	}

	if err := services.DeleteFoodLog(userID, uint(logID)); err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Food log entry deleted successfully.",
		"redirect": "/dashboard/",
	})
}
