package repository

import "errors"

var (
	ErrUserNotFound = errors.New("repository: user not found")
)
