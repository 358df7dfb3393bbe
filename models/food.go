package models

// FoodResult is one food-search hit, normalised to per-100g nutrition
// regardless of which provider produced it.
type FoodResult struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Image       string `json:"image,omitempty"`
	ServingSize string `json:"serving_size"` // provider's serving descriptor, "100g" when unknown
	Calories    int    `json:"calories"`     // per 100 g
	Protein     int    `json:"protein"`
	Carbs       int    `json:"carbs"`
	Fat         int    `json:"fat"`
}
