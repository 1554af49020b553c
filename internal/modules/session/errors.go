package session

import "errors"

var (
	ErrLoginFailed        = errors.New("login failed")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrInvalidRole        = errors.New("invalid role")
)
