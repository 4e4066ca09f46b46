package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("a user with that username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTooLong    = errors.New("ensure username has no more than 150 characters")
	ErrPasswordTooLong    = errors.New("ensure password has no more than 72 bytes")
)
