package activity

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserIDRequired  = errors.New("user_id is required")
	ErrInvalidWindow   = errors.New("end date is before start date")
	ErrProjectRequired = errors.New("project_id is required")
)
