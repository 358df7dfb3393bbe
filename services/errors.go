package services

import (
	"errors"
	"fmt"
)

// ErrEmptyMeal rejects meals logged without any food items.
var ErrEmptyMeal = errors.New("meal has no food items")

// ErrNoPreferences is returned when plan generation runs before meal
// preferences were saved.
var ErrNoPreferences = errors.New("meal preferences not set")

// ValidationError reports a value outside its allowed domain. State is left
// unchanged when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
