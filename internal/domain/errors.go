package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrExpired  = errors.New("expired")
	ErrMismatch = errors.New("mismatch")
)
