package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mdaamman/caloriestracker/services"
	"github.com/mdaamman/caloriestracker/utils"

	"github.com/gin-gonic/gin"
)

// SignupInput combines the account and profile forms: signup creates both
// in one step, like the original registration flow.
type SignupInput struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" binding:"required,min=6"`

	Age           int     `json:"age" binding:"required,min=1,max=120"`
	Gender        string  `json:"gender" binding:"required,oneof=male female"`
	HeightCm      float64 `json:"height_cm" binding:"required,gt=0"`
	WeightKg      float64 `json:"weight_kg" binding:"required,gt=0"`
	ActivityLevel string  `json:"activity_level" binding:"omitempty,oneof=sedentary light moderate active very_active"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// authenticatedUsername reports whether the caller already holds a valid
// token. Signup and login send such visitors straight to the dashboard.
func authenticatedUsername(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	username, err := utils.ParseJWT(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return "", false
	}
	return username, true
}

// Home redirects by auth state: dashboard when signed in, login otherwise.
func Home(c *gin.Context) {
	if _, ok := authenticatedUsername(c); ok {
		c.JSON(http.StatusOK, gin.H{"redirect": "/dashboard/"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/login/"})
}

func Signup(c *gin.Context) {
	if _, ok := authenticatedUsername(c); ok {
		c.JSON(http.StatusOK, gin.H{"redirect": "/dashboard/"})
		return
	}

	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.RegisterUser(input.Username, input.Email, input.FirstName, input.LastName, input.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.SaveProfile(user.ID, input.Age, input.Gender, input.HeightCm, input.WeightKg, input.ActivityLevel)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// auto login after registration
	token, err := utils.GenerateJWT(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  fmt.Sprintf("Account created successfully! Welcome, %s!", user.Username),
		"token":    token,
		"profile":  profile,
		"redirect": "/dashboard/",
	})
}

func Login(c *gin.Context) {
	if _, ok := authenticatedUsername(c); ok {
		c.JSON(http.StatusOK, gin.H{"redirect": "/dashboard/"})
		return
	}

	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.AuthenticateUser(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateJWT(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	next := c.Query("next")
	if next == "" {
		next = "/dashboard/"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("Welcome back, %s!", user.Username),
		"token":    token,
		"redirect": next,
	})
}

// Logout acknowledges the logout; tokens are stateless, so disposal is the
// client's job.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  "You have been logged out successfully.",
		"redirect": "/login/",
	})
}
