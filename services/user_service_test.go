package services

import (
	"testing"

	"ntreal/notes/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	db := testutils.SetupTestDB(t)
	authService := NewAuthService("test-secret", 1)
	service := NewUserService(authService)

	user, err := service.Register(db, "temporary1@ntreal.com", "temporary1", "Temporary One")
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "temporary1@ntreal.com", user.Email)
	assert.NotEqual(t, "temporary1", user.PasswordHash)

	fetched, err := service.GetUserByEmail(db, "temporary1@ntreal.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := testutils.SetupTestDB(t)
	authService := NewAuthService("test-secret", 1)
	service := NewUserService(authService)

	_, err := service.Register(db, "temporary1@ntreal.com", "temporary1", "")
	assert.NoError(t, err)

	_, err = service.Register(db, "temporary1@ntreal.com", "temporary1", "")
	assert.ErrorIs(t, err, ErrResourceExists)
}

func TestRegister_MissingFields(t *testing.T) {
	db := testutils.SetupTestDB(t)
	authService := NewAuthService("test-secret", 1)
	service := NewUserService(authService)

	_, err := service.Register(db, "", "temporary1", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.Register(db, "temporary1@ntreal.com", "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserById_NotFound(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewUserService(NewAuthService("test-secret", 1))

	_, err := service.GetUserById(db, uuid.NewString())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
