package services

import (
	"fmt"
	"time"

	"github.com/AbdullahAljelamneh/repright-application/models"
	"github.com/AbdullahAljelamneh/repright-application/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Storage keys for the per-user ledger documents.
const (
	KeyMeals       = "meals"
	KeyDailyGoal   = "daily_goal"
	KeyMacroGoals  = "macro_goals"
	KeyStreak      = "streak"
	KeyLastActive  = "last_active"
	KeyPreferences = "meal_preferences"
	KeyWeeklyPlan  = "weekly_meal_plan"
)

// LedgerService owns the current day's meal log, the calorie/macro goals
// and the streak counter, and performs the end-of-day rollover. Reads that
// fail or return garbage fall back to defaults; writes that fail are
// surfaced to the caller but never rolled back in memory.
type LedgerService struct {
	store Store
	clock Clock
}

func NewLedgerService(store Store, clock Clock) *LedgerService {
	if clock == nil {
		clock = SystemClock()
	}
	return &LedgerService{store: store, clock: clock}
}

// DaySnapshot is the dashboard payload: current state plus the derived
// aggregates computed from it.
type DaySnapshot struct {
	Meals             []models.Meal `json:"meals"`
	Goals             models.Goals  `json:"goals"`
	Streak            int           `json:"streak"`
	TotalCalories     int           `json:"total_calories"`
	TotalMacros       models.Macros `json:"total_macros"`
	RemainingCalories int           `json:"remaining_calories"`
	CaloriePercent    int           `json:"calorie_percent"`
	MacroPercents     models.Macros `json:"macro_percents"`
}

// Load reads the persisted day state, rolls the day over first if the
// stored last-active date falls on an earlier calendar day, and stamps the
// current instant as the new last-active date. It never fails on missing or
// corrupt storage; defaults win.
func (s *LedgerService) Load() (*DaySnapshot, error) {
	now := s.clock.Now()

	var lastActive string
	ok, err := s.store.Get(KeyLastActive, &lastActive)
	if err != nil {
		logrus.WithError(err).Warn("reading last active date, assuming current day")
	} else if ok {
		if prev, perr := time.Parse(time.RFC3339, lastActive); perr == nil && utils.ShouldRollOver(prev, now) {
			if err := s.rollover(now); err != nil {
				return nil, fmt.Errorf("day rollover: %w", err)
			}
		}
	}

	// Touch the day even when nothing else changed. A failed stamp is not
	// fatal; the next Load will redo the day check.
	if err := s.store.Set(KeyLastActive, now.Format(time.RFC3339)); err != nil {
		logrus.WithError(err).Warn("stamping last active date")
	}

	return s.Progress(), nil
}

// Progress recomputes today's aggregates without touching the last-active
// stamp. Used after mutations and by the realtime push.
func (s *LedgerService) Progress() *DaySnapshot {
	meals := s.loadMeals()
	goals := s.loadGoals()
	totals := utils.TotalMacros(meals)
	consumed := utils.TotalCalories(meals)
	return &DaySnapshot{
		Meals:             meals,
		Goals:             goals,
		Streak:            s.loadStreak(),
		TotalCalories:     consumed,
		TotalMacros:       totals,
		RemainingCalories: utils.RemainingCalories(goals.DailyCalorieGoal, consumed),
		CaloriePercent:    utils.Percentage(consumed, goals.DailyCalorieGoal),
		MacroPercents: models.Macros{
			Protein: utils.Percentage(totals.Protein, goals.Macros.Protein),
			Carbs:   utils.Percentage(totals.Carbs, goals.Macros.Carbs),
			Fat:     utils.Percentage(totals.Fat, goals.Macros.Fat),
		},
	}
}

// rollover closes out the previous day: bump the streak if that day had at
// least one meal, reset it otherwise, clear the meal list and stamp the new
// active day. The three writes go through one transaction so a crash cannot
// split the day boundary. A multi-day gap still applies a single
// increment-or-reset step.
func (s *LedgerService) rollover(now time.Time) error {
	streak := s.loadStreak()
	if len(s.loadMeals()) > 0 {
		streak++
	} else {
		streak = 0
	}
	return s.store.SetMulti(map[string]any{
		KeyStreak:     streak,
		KeyMeals:      []models.Meal{},
		KeyLastActive: now.Format(time.RFC3339),
	})
}

// AddMeal validates and appends a meal to today's log. The denormalized
// totals are recomputed from the items before persisting.
func (s *LedgerService) AddMeal(meal models.Meal) (*models.Meal, error) {
	if len(meal.Items) == 0 {
		return nil, ErrEmptyMeal
	}
	if !models.ValidMealType(meal.MealType) {
		return nil, &ValidationError{Field: "meal_type", Message: "must be one of Breakfast, Lunch, Dinner, Snack"}
	}
	if meal.ID == "" {
		meal.ID = uuid.NewString()
	}
	if meal.Timestamp.IsZero() {
		meal.Timestamp = s.clock.Now()
	}
	normalizeTotals(&meal)

	meals := append(s.loadMeals(), meal)
	if err := s.store.Set(KeyMeals, meals); err != nil {
		return nil, fmt.Errorf("persist meals: %w", err)
	}
	return &meal, nil
}

// EditMeal replaces the meal with the given id wholesale, preserving its
// position in the day, its id and its original timestamp. An unknown id is
// a silent no-op and returns (nil, nil).
func (s *LedgerService) EditMeal(id string, updated models.Meal) (*models.Meal, error) {
	if len(updated.Items) == 0 {
		return nil, ErrEmptyMeal
	}
	meals := s.loadMeals()
	for i := range meals {
		if meals[i].ID != id {
			continue
		}
		updated.ID = id
		updated.Timestamp = meals[i].Timestamp
		if updated.MealType == "" {
			updated.MealType = meals[i].MealType
		} else if !models.ValidMealType(updated.MealType) {
			return nil, &ValidationError{Field: "meal_type", Message: "must be one of Breakfast, Lunch, Dinner, Snack"}
		}
		normalizeTotals(&updated)
		meals[i] = updated
		if err := s.store.Set(KeyMeals, meals); err != nil {
			return nil, fmt.Errorf("persist meals: %w", err)
		}
		return &meals[i], nil
	}
	return nil, nil
}

// DeleteMeal removes the meal with the given id. An unknown id is a no-op.
func (s *LedgerService) DeleteMeal(id string) error {
	meals := s.loadMeals()
	kept := meals[:0]
	for _, m := range meals {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(meals) {
		return nil
	}
	if err := s.store.Set(KeyMeals, kept); err != nil {
		return fmt.Errorf("persist meals: %w", err)
	}
	return nil
}

// SetDailyGoal persists a new calorie goal within [500, 10000].
func (s *LedgerService) SetDailyGoal(value int) (int, error) {
	if value < models.MinDailyCalorieGoal || value > models.MaxDailyCalorieGoal {
		return 0, &ValidationError{
			Field:   "daily_goal",
			Message: fmt.Sprintf("must be between %d and %d calories", models.MinDailyCalorieGoal, models.MaxDailyCalorieGoal),
		}
	}
	if err := s.store.Set(KeyDailyGoal, value); err != nil {
		return 0, fmt.Errorf("persist daily goal: %w", err)
	}
	return value, nil
}

// SetMacroGoals persists new macro targets; each must be non-negative.
func (s *LedgerService) SetMacroGoals(m models.Macros) (models.Macros, error) {
	for field, v := range map[string]int{"protein": m.Protein, "carbs": m.Carbs, "fat": m.Fat} {
		if v < 0 {
			return models.Macros{}, &ValidationError{Field: field, Message: "must not be negative"}
		}
	}
	if err := s.store.Set(KeyMacroGoals, m); err != nil {
		return models.Macros{}, fmt.Errorf("persist macro goals: %w", err)
	}
	return m, nil
}

// Goals returns the active goals, defaults where unset.
func (s *LedgerService) Goals() models.Goals {
	return s.loadGoals()
}

func (s *LedgerService) loadMeals() []models.Meal {
	meals := []models.Meal{}
	ok, err := s.store.Get(KeyMeals, &meals)
	if err != nil {
		logrus.WithError(err).Warn("reading meals, using empty day log")
	}
	if !ok || meals == nil {
		return []models.Meal{}
	}
	return meals
}

func (s *LedgerService) loadGoals() models.Goals {
	goals := models.DefaultGoals()
	var calorieGoal int
	if ok, err := s.store.Get(KeyDailyGoal, &calorieGoal); err != nil {
		logrus.WithError(err).Warn("reading daily goal, using default")
	} else if ok && calorieGoal > 0 {
		goals.DailyCalorieGoal = calorieGoal
	}
	var macros models.Macros
	if ok, err := s.store.Get(KeyMacroGoals, &macros); err != nil {
		logrus.WithError(err).Warn("reading macro goals, using defaults")
	} else if ok {
		goals.Macros = macros
	}
	return goals
}

func (s *LedgerService) loadStreak() int {
	streak := 0
	if ok, err := s.store.Get(KeyStreak, &streak); err != nil {
		logrus.WithError(err).Warn("reading streak, using zero")
	} else if !ok || streak < 0 {
		return 0
	}
	return streak
}

// normalizeTotals enforces the sum invariant: the meal's denormalized
// totals always equal the sums over its items.
func normalizeTotals(m *models.Meal) {
	m.Calories, m.Protein, m.Carbs, m.Fat = 0, 0, 0, 0
	for _, it := range m.Items {
		m.Calories += it.Calories
		m.Protein += it.Protein
		m.Carbs += it.Carbs
		m.Fat += it.Fat
	}
}
