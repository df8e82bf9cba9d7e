package services

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrValidation      = errors.New("validation failed")
	ErrAlreadyReviewed = errors.New("you already reviewed this cafe")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrCampusExists    = errors.New("campus name already taken")
)
