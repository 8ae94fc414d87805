package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTripNotFound       = errors.New("trip not found")
	ErrForbidden          = errors.New("trip belongs to another user")
	ErrInvalidDayNumber   = errors.New("invalid day number")
	ErrGenerationFailed   = errors.New("itinerary generation failed")
	ErrDatabaseError      = errors.New("database error")
)
