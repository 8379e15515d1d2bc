package services

import (
	"errors"
	"strings"

	"github.com/mdaamman/caloriestracker/config"
	"github.com/mdaamman/caloriestracker/models"
	"github.com/mdaamman/caloriestracker/utils"

	"gorm.io/gorm"
)

// ErrInvalidCredentials is deliberately the same for an unknown username
// and a wrong password, so login responses don't leak which one it was.
var ErrInvalidCredentials = errors.New("invalid username or password")

func RegisterUser(username, email, firstName, lastName, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username required")
	}

	var existing models.User
	if err := config.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, errors.New("username already taken")
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Password:  hashedPassword,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
