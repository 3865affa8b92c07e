package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUserInactive       = errors.New("user account is inactive")
)
