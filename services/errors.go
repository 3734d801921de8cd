package services

import "errors"

// Sentinel errors the controllers map onto HTTP status codes. Service
// functions wrap them with fmt.Errorf("...: %w", ...) so callers can use
// errors.Is while keeping the upstream detail.
var (
	ErrFoodNotFound    = errors.New("food not found")
	ErrFoodUnavailable = errors.New("food provider unavailable")
	ErrMealNotFound    = errors.New("meal not found")
	ErrUserNotFound    = errors.New("user not found")
)
