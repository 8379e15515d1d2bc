package controllers

import (
	"errors"
	"net/http"

	"github.com/mdaamman/caloriestracker/models"
	"github.com/mdaamman/caloriestracker/services"
	"github.com/mdaamman/caloriestracker/utils"

	"github.com/gin-gonic/gin"
)

type ProfileInput struct {
	Age           int     `json:"age" binding:"required,min=1,max=120"`
	Gender        string  `json:"gender" binding:"required,oneof=male female"`
	HeightCm      float64 `json:"height_cm" binding:"required,gt=0"`
	WeightKg      float64 `json:"weight_kg" binding:"required,gt=0"`
	ActivityLevel string  `json:"activity_level" binding:"omitempty,oneof=sedentary light moderate active very_active"`
}

// GetProfile returns the current profile, or a null profile when the user
// has not filled one in yet (the blank form case).
func GetProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	profile, err := services.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusOK, gin.H{"profile": nil})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"profile": profile}
	if bmi, err := utils.CalculateBMI(profile.HeightCm, profile.WeightKg); err == nil {
		resp["bmi"] = models.Round2(bmi)
		resp["bmi_category"] = utils.BMICategory(bmi)
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateProfile creates or updates the profile for the session's user and
// recomputes the daily calorie target.
func UpdateProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.SaveProfile(userID, input.Age, input.Gender, input.HeightCm, input.WeightKg, input.ActivityLevel)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Profile updated successfully!",
		"profile":  profile,
		"redirect": "/dashboard/",
	})
}
