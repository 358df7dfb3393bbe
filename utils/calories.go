package utils

import (
	"math"

	"github.com/AbdullahAljelamneh/repright-application/models"
)

// CaloriesFromMacros converts grams of each macro into calories using the
// Atwater factors: protein 4 kcal/g, carbs 4 kcal/g, fat 9 kcal/g.
func CaloriesFromMacros(protein, carbs, fat int) int {
	return protein*4 + carbs*4 + fat*9
}

// TotalCalories sums the denormalized calorie totals of a day's meals.
func TotalCalories(meals []models.Meal) int {
	total := 0
	for _, m := range meals {
		total += m.Calories
	}
	return total
}

// TotalMacros sums the macro totals of a day's meals component-wise.
func TotalMacros(meals []models.Meal) models.Macros {
	var t models.Macros
	for _, m := range meals {
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
	}
	return t
}

// RemainingCalories never goes negative; overconsumption shows up through
// the percentage instead.
func RemainingCalories(goal, consumed int) int {
	if r := goal - consumed; r > 0 {
		return r
	}
	return 0
}

// Percentage returns progress toward a goal rounded to whole percent and
// clamped to [0, 100]. A zero goal yields 0.
func Percentage(current, goal int) int {
	if goal <= 0 {
		return 0
	}
	p := int(math.Round(float64(current) / float64(goal) * 100))
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// MacroPercentages breaks down where calories come from across the three
// macros, in whole percent of their combined calories.
func MacroPercentages(protein, carbs, fat int) models.Macros {
	total := CaloriesFromMacros(protein, carbs, fat)
	if total == 0 {
		return models.Macros{}
	}
	return models.Macros{
		Protein: int(math.Round(float64(protein*4) / float64(total) * 100)),
		Carbs:   int(math.Round(float64(carbs*4) / float64(total) * 100)),
		Fat:     int(math.Round(float64(fat*9) / float64(total) * 100)),
	}
}

// Activity multipliers for the Mifflin-St Jeor estimate.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// EstimateDailyCalories estimates maintenance calories with the
// Mifflin-St Jeor equation. Unknown activity levels fall back to moderate.
func EstimateDailyCalories(weightKg, heightCm float64, age int, gender, activityLevel string) int {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = activityMultipliers["moderate"]
	}
	return int(math.Round(bmr * mult))
}
