package services

import (
	"errors"

	"ntreal/notes/database"
	"ntreal/notes/models"

	"gorm.io/gorm"
)

type UserServiceInterface interface {
	Register(db *database.Database, email, password, displayName string) (models.User, error)
	GetUserById(db *database.Database, id string) (models.User, error)
	GetUserByEmail(db *database.Database, email string) (models.User, error)
}

type UserService struct {
	auth AuthServiceInterface
}

func NewUserService(auth AuthServiceInterface) UserServiceInterface {
	return &UserService{auth: auth}
}

func (s *UserService) Register(db *database.Database, email, password, displayName string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, ErrInvalidInput
	}

	var count int64
	if err := db.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, ErrResourceExists
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) GetUserById(db *database.Database, id string) (models.User, error) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) GetUserByEmail(db *database.Database, email string) (models.User, error) {
	var user models.User
	if err := db.DB.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

var UserServiceInstance UserServiceInterface
