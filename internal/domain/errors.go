package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidFilter      = errors.New("invalid product filter")
	ErrInvalidPreferences = errors.New("invalid preferences")
	ErrInvalidProduct     = errors.New("invalid product")
)
