package service

import "errors"

// Ошибки валидации входных данных
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
