package services

import (
	"strings"

	"github.com/AbdullahAljelamneh/repright-application/models"
)

// Aisle categories in display order. An ingredient lands in the first
// category whose keyword appears in its name, so "bell pepper" is a
// vegetable even though pantry items also match on spice words.
var groceryCategories = []struct {
	name     string
	keywords []string
}{
	{"Proteins", []string{
		"chicken", "beef", "pork", "fish", "salmon", "turkey", "tofu", "meat",
	}},
	{"Vegetables", []string{
		"lettuce", "tomato", "onion", "carrot", "broccoli", "spinach", "pepper",
		"cucumber", "vegetable", "celery", "zucchini", "kale",
	}},
	{"Fruits", []string{
		"apple", "banana", "orange", "berry", "strawberry", "blueberry", "grape",
		"fruit", "lemon", "lime", "avocado",
	}},
	{"Grains & Carbs", []string{
		"rice", "pasta", "bread", "oats", "quinoa", "flour", "tortilla",
		"noodle", "cereal",
	}},
	{"Dairy & Eggs", []string{
		"milk", "cheese", "yogurt", "butter", "cream", "egg",
	}},
	{"Pantry Staples", []string{
		"oil", "salt", "spice", "sauce", "vinegar", "sugar", "honey", "garlic",
		"seasoning",
	}},
}

const groceryCategoryOther = "Other"

// GroceryList flattens the stored weekly plan's recipe ingredients into a
// shopping list grouped by aisle category, deduplicated within each
// category. An empty or fallback-only plan yields an empty list.
func (s *MealPlanService) GroceryList() models.GroceryList {
	plan := s.Plan()
	list := models.GroceryList{}
	seen := map[string]map[string]struct{}{}

	for day := 0; day < 7; day++ {
		for _, mealType := range models.MealTypes {
			recipe, ok := plan[day][mealType]
			if !ok {
				continue
			}
			for _, ingredient := range recipe.Ingredients {
				if strings.TrimSpace(ingredient) == "" {
					continue
				}
				category := categorizeIngredient(ingredient)
				if seen[category] == nil {
					seen[category] = map[string]struct{}{}
				}
				if _, dup := seen[category][ingredient]; dup {
					continue
				}
				seen[category][ingredient] = struct{}{}
				list[category] = append(list[category], ingredient)
			}
		}
	}
	return list
}

func categorizeIngredient(ingredient string) string {
	lower := strings.ToLower(ingredient)
	for _, c := range groceryCategories {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.name
			}
		}
	}
	return groceryCategoryOther
}
