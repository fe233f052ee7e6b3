package models

import "errors"

// Application-wide standard errors. Handlers translate these into HTTP
// responses in one place (handler.respondError); nothing below the handler
// layer speaks HTTP.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEventNotFound = errors.New("event not found")
	ErrMatchNotFound = errors.New("match not found")

	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrAlreadyRegistered  = errors.New("user already registered for this event")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token has expired")

	ErrInvalidInput = errors.New("invalid input data")
)
