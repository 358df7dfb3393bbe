package services

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/AbdullahAljelamneh/repright-application/models"

	"github.com/sirupsen/logrus"
)

// Share of the daily calorie goal assigned to each plan slot.
var planCalorieShare = map[string]float64{
	models.MealTypeBreakfast: 0.25,
	models.MealTypeLunch:     0.35,
	models.MealTypeDinner:    0.30,
	models.MealTypeSnack:     0.10,
}

// MealPlanService owns meal preferences and the AI-generated weekly plan.
// Every slot that fails generation gets a deterministic fallback recipe, so
// a finished plan never has holes.
type MealPlanService struct {
	store Store
	ai    *RecipeAIService
}

func NewMealPlanService(store Store, ai *RecipeAIService) *MealPlanService {
	return &MealPlanService{store: store, ai: ai}
}

// Preferences returns the saved preferences and whether any were saved.
func (s *MealPlanService) Preferences() (models.Preferences, bool) {
	var prefs models.Preferences
	ok, err := s.store.Get(KeyPreferences, &prefs)
	if err != nil {
		logrus.WithError(err).Warn("reading meal preferences")
		return models.Preferences{}, false
	}
	return prefs, ok
}

func (s *MealPlanService) SavePreferences(p models.Preferences) error {
	if len(p.Cuisines) == 0 {
		return &ValidationError{Field: "cuisines", Message: "select at least one cuisine"}
	}
	if err := s.store.Set(KeyPreferences, p); err != nil {
		return fmt.Errorf("persist preferences: %w", err)
	}
	return nil
}

// Plan returns the stored weekly plan, empty when none was generated yet.
func (s *MealPlanService) Plan() models.WeeklyMealPlan {
	plan := models.WeeklyMealPlan{}
	ok, err := s.store.Get(KeyWeeklyPlan, &plan)
	if err != nil {
		logrus.WithError(err).Warn("reading weekly meal plan")
	}
	if !ok || plan == nil {
		return models.WeeklyMealPlan{}
	}
	return plan
}

// GenerateWeeklyPlan builds a 7-day plan, one recipe per meal slot, sized
// from the daily calorie goal (25/35/30/10% across the slots). Preferences
// with at least one cuisine must be saved first.
func (s *MealPlanService) GenerateWeeklyPlan() (models.WeeklyMealPlan, error) {
	prefs, ok := s.Preferences()
	if !ok || len(prefs.Cuisines) == 0 {
		return nil, ErrNoPreferences
	}

	calorieGoal := models.DefaultDailyCalorieGoal
	var stored int
	if ok, err := s.store.Get(KeyDailyGoal, &stored); err == nil && ok && stored > 0 {
		calorieGoal = stored
	}

	plan := models.WeeklyMealPlan{}
	for day := 0; day < 7; day++ {
		plan[day] = make(map[string]models.Recipe, len(models.MealTypes))
		for _, mealType := range models.MealTypes {
			target := int(math.Round(float64(calorieGoal) * planCalorieShare[mealType]))
			recipe, err := s.ai.GenerateRecipe(RecipeParams{
				MealType:       mealType,
				TargetCalories: target,
				Diet:           prefs.Diet,
				Cuisine:        prefs.Cuisines[rand.Intn(len(prefs.Cuisines))],
				Allergies:      prefs.Allergies,
				Budget:         prefs.Budget,
			})
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"day": day, "meal_type": mealType,
				}).Warn("ai recipe generation failed, using fallback")
				recipe = FallbackRecipe(mealType, target, day)
			}
			plan[day][mealType] = *recipe
		}
	}

	if err := s.store.Set(KeyWeeklyPlan, plan); err != nil {
		return plan, fmt.Errorf("persist weekly plan: %w", err)
	}
	return plan, nil
}
