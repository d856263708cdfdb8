package utils

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrValidationFailed = errors.New("validation failed")
	ErrCompletionFailed = errors.New("completion service failed")
	ErrEmptyCompletion  = errors.New("completion service returned no text")
	ErrPredictionFailed = errors.New("prediction failed")
	ErrDatabaseError    = errors.New("database error")
)
