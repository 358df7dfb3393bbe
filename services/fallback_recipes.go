package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/AbdullahAljelamneh/repright-application/models"
)

type recipeTemplate struct {
	title   string
	summary string
}

// Rotating templates per meal type. Indexed by day so the same slot gets the
// same dish on regeneration, which keeps the fallback path testable.
var fallbackTemplates = map[string][]recipeTemplate{
	models.MealTypeBreakfast: {
		{"Oatmeal with Berries", "Warm oatmeal topped with fresh berries, honey, and almonds."},
		{"Scrambled Eggs & Toast", "Fluffy scrambled eggs with whole wheat toast and avocado."},
		{"Greek Yogurt Parfait", "Creamy Greek yogurt layered with granola and fresh fruit."},
		{"Protein Pancakes", "Fluffy protein pancakes topped with banana and maple syrup."},
		{"Avocado Toast", "Smashed avocado on sourdough with poached eggs."},
		{"Smoothie Bowl", "Thick smoothie bowl topped with granola, coconut, and berries."},
		{"French Toast", "Classic French toast with cinnamon and fresh strawberries."},
	},
	models.MealTypeLunch: {
		{"Grilled Chicken Salad", "Fresh grilled chicken breast over mixed greens with vinaigrette."},
		{"Turkey & Cheese Wrap", "Whole wheat wrap with turkey, cheese, lettuce, and tomato."},
		{"Quinoa Buddha Bowl", "Quinoa bowl with roasted vegetables, chickpeas, and tahini."},
		{"Chicken Caesar Salad", "Crisp romaine with grilled chicken, parmesan, and Caesar dressing."},
		{"Tuna Sandwich", "Tuna salad sandwich on whole grain bread with lettuce."},
		{"Veggie Stir-Fry", "Colorful vegetable stir-fry with tofu over brown rice."},
		{"Chicken Burrito Bowl", "Grilled chicken with rice, beans, salsa, and guacamole."},
	},
	models.MealTypeDinner: {
		{"Baked Salmon with Vegetables", "Perfectly baked salmon fillet with roasted seasonal vegetables."},
		{"Grilled Steak & Potatoes", "Juicy grilled steak with roasted potatoes and asparagus."},
		{"Chicken Pasta Primavera", "Whole wheat pasta with grilled chicken and fresh vegetables."},
		{"Shrimp Tacos", "Grilled shrimp tacos with cabbage slaw and avocado."},
		{"Turkey Meatballs & Zoodles", "Lean turkey meatballs with zucchini noodles and marinara."},
		{"Grilled Chicken & Rice", "Marinated grilled chicken breast with brown rice and broccoli."},
		{"Beef Stir-Fry", "Tender beef strips with mixed vegetables in savory sauce."},
	},
	models.MealTypeSnack: {
		{"Greek Yogurt with Nuts", "Protein-rich Greek yogurt topped with mixed nuts and honey."},
		{"Apple & Peanut Butter", "Fresh apple slices with natural peanut butter."},
		{"Protein Shake", "Chocolate protein shake with banana and almond milk."},
		{"Trail Mix", "Healthy mix of nuts, seeds, and dried fruits."},
		{"Cottage Cheese & Fruit", "Low-fat cottage cheese with fresh pineapple chunks."},
		{"Hummus & Veggies", "Creamy hummus with carrot sticks and bell peppers."},
		{"Protein Bar", "High-protein energy bar with nuts and chocolate."},
	},
}

var fallbackCookTimes = map[string]int{
	models.MealTypeBreakfast: 10,
	models.MealTypeLunch:     20,
	models.MealTypeDinner:    30,
	models.MealTypeSnack:     5,
}

// FallbackRecipe builds a deterministic recipe for a plan slot when AI
// generation fails. Macros follow a 25/50/25 calorie split at 4/4/9 kcal/g.
func FallbackRecipe(mealType string, calories, dayIndex int) *models.Recipe {
	templates, ok := fallbackTemplates[mealType]
	if !ok {
		templates = fallbackTemplates[models.MealTypeLunch]
	}
	t := templates[dayIndex%len(templates)]

	return &models.Recipe{
		ID:             fmt.Sprintf("%s-day%d", strings.ToLower(mealType), dayIndex),
		Title:          t.title,
		Calories:       calories,
		Protein:        int(math.Round(float64(calories) * 0.25 / 4)),
		Carbs:          int(math.Round(float64(calories) * 0.50 / 4)),
		Fat:            int(math.Round(float64(calories) * 0.25 / 9)),
		Servings:       1,
		ReadyInMinutes: fallbackCookTimes[mealType],
		Summary:        t.summary,
	}
}
