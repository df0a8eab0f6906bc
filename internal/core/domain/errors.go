package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation error")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrNotificationFailed = errors.New("notification failed")
	ErrPaymentsDisabled   = errors.New("card payments are not configured")
	ErrUnauthorized       = errors.New("unauthorized")
)
