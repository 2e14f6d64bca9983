package service

import "errors"

var (
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrCodeNotFound   = errors.New("verification code not found")
	ErrCodeExpired    = errors.New("verification code expired")
	ErrCodeMismatch   = errors.New("verification code mismatch")
	ErrDeliveryFailed = errors.New("email delivery failed")
)
