package report

import "errors"

var (
	ErrInvalidPeriod = errors.New("invalid reporting period")
	ErrUserNotFound  = errors.New("user not found")
)
