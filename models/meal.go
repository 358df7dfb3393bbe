package models

import "time"

// Meal types a user can log.
const (
	MealTypeBreakfast = "Breakfast"
	MealTypeLunch     = "Lunch"
	MealTypeDinner    = "Dinner"
	MealTypeSnack     = "Snack"
)

// MealTypes lists the loggable meal slots in day order.
var MealTypes = []string{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack}

func ValidMealType(t string) bool {
	for _, mt := range MealTypes {
		if mt == t {
			return true
		}
	}
	return false
}

// FoodLineItem is a single food inside a meal. Nutrition values are already
// scaled by the chosen serving size.
type FoodLineItem struct {
	Name     string `json:"name"`
	Serving  string `json:"serving"` // e.g. "150g"
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
}

// Meal is one logged eating event. Calories and the macro fields are
// denormalized sums over Items; the ledger recomputes them on every write so
// they cannot drift from the item list.
type Meal struct {
	ID        string         `json:"id"`
	MealType  string         `json:"meal_type"`
	Items     []FoodLineItem `json:"items"`
	Calories  int            `json:"calories"`
	Protein   int            `json:"protein"`
	Carbs     int            `json:"carbs"`
	Fat       int            `json:"fat"`
	Timestamp time.Time      `json:"timestamp"` // set at creation, kept across edits
}
