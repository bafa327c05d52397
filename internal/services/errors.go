package services

import "errors"

var (
	// ErrRestaurantNotFound is returned when a restaurant id does not exist
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrPizzaNotFound is returned when a pizza id does not exist
	ErrPizzaNotFound = errors.New("pizza not found")
)
