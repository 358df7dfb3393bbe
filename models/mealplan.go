package models

// Preferences drive weekly meal-plan generation. At least one cuisine is
// required before a plan can be generated.
type Preferences struct {
	Diet      string   `json:"diet"`   // e.g. "balanced", "vegetarian"
	Budget    string   `json:"budget"` // e.g. "budget", "moderate", "premium"
	Cuisines  []string `json:"cuisines"`
	Allergies []string `json:"allergies"`
}

// Recipe is one generated (or fallback) slot in the weekly plan.
type Recipe struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Image          string   `json:"image,omitempty"`
	Calories       int      `json:"calories"`
	Protein        int      `json:"protein"`
	Carbs          int      `json:"carbs"`
	Fat            int      `json:"fat"`
	Servings       int      `json:"servings"`
	ReadyInMinutes int      `json:"ready_in_minutes"`
	Summary        string   `json:"summary"`
	Ingredients    []string `json:"ingredients,omitempty"`
	Instructions   []string `json:"instructions,omitempty"`
}

// WeeklyMealPlan maps day index (0-6, Monday first) to meal type to recipe.
type WeeklyMealPlan map[int]map[string]Recipe

// GroceryList groups shopping items by aisle category.
type GroceryList map[string][]string
