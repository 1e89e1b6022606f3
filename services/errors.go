package services

import "errors"

// Common errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrResourceExists     = errors.New("resource already exists")
	ErrInternal           = errors.New("internal server error")
)
