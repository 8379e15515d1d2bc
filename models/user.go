package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `gorm:"not null" json:"-"`

	Profile  *UserProfile   `gorm:"constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	FoodLogs []DailyFoodLog `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
