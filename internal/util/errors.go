package util

import "errors"

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrProfileNotFound = errors.New("profile not found")
	ErrEmailRegistered = errors.New("email already registered")
	ErrInvalidPayload  = errors.New("invalid content payload")
)
