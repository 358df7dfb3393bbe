package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/AbdullahAljelamneh/repright-application/models"
)

// fakeStore is an in-memory Store that round-trips values through JSON the
// same way the real one does.
type fakeStore struct {
	data     map[string][]byte
	failGets bool
	failSets bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]byte{}}
}

func (f *fakeStore) Get(key string, out any) (bool, error) {
	if f.failGets {
		return false, errors.New("get failed")
	}
	b, ok := f.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeStore) Set(key string, value any) error {
	if f.failSets {
		return errors.New("set failed")
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = b
	return nil
}

func (f *fakeStore) Remove(key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeStore) SetMulti(entries map[string]any) error {
	for k, v := range entries {
		if err := f.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

var day1 = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.Local)

func testLedger(t *testing.T) (*LedgerService, *fakeStore, *fixedClock) {
	t.Helper()
	store := newFakeStore()
	clock := &fixedClock{now: day1}
	return NewLedgerService(store, clock), store, clock
}

func sampleMeal(mealType string, calories, protein, carbs, fat int) models.Meal {
	return models.Meal{
		MealType: mealType,
		Items: []models.FoodLineItem{
			{Name: "item", Serving: "100g", Calories: calories, Protein: protein, Carbs: carbs, Fat: fat},
		},
	}
}

func TestLoadDefaults(t *testing.T) {
	ledger, store, _ := testLedger(t)

	snap, err := ledger.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Meals) != 0 {
		t.Errorf("meals = %d, want 0", len(snap.Meals))
	}
	if snap.Goals.DailyCalorieGoal != 2000 {
		t.Errorf("daily goal = %d, want 2000", snap.Goals.DailyCalorieGoal)
	}
	if snap.Goals.Macros != (models.Macros{Protein: 150, Carbs: 200, Fat: 65}) {
		t.Errorf("macro goals = %+v, want defaults", snap.Goals.Macros)
	}
	if snap.Streak != 0 {
		t.Errorf("streak = %d, want 0", snap.Streak)
	}

	var lastActive string
	if ok, _ := store.Get(KeyLastActive, &lastActive); !ok {
		t.Fatal("last active date was not stamped")
	}
	stamped, err := time.Parse(time.RFC3339, lastActive)
	if err != nil {
		t.Fatalf("stamped last active is not RFC3339: %v", err)
	}
	if !stamped.Equal(day1) {
		t.Errorf("last active = %v, want %v", stamped, day1)
	}
}

func TestLoadTreatsCorruptValuesAsAbsent(t *testing.T) {
	ledger, store, _ := testLedger(t)
	store.data[KeyMeals] = []byte(`"definitely not a meal list"`)
	store.data[KeyDailyGoal] = []byte(`{"nope": true}`)
	store.data[KeyStreak] = []byte(`[]`)

	snap, err := ledger.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Meals) != 0 || snap.Goals.DailyCalorieGoal != 2000 || snap.Streak != 0 {
		t.Errorf("corrupt storage did not fall back to defaults: %+v", snap)
	}
}

// Scenario: no meals yesterday. The streak resets on rollover.
func TestRolloverResetsStreakWithoutMeals(t *testing.T) {
	ledger, store, clock := testLedger(t)
	store.Set(KeyStreak, 3)
	store.Set(KeyLastActive, day1.AddDate(0, 0, -1).Format(time.RFC3339))

	snap, err := ledger.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Streak != 0 {
		t.Errorf("streak = %d, want 0 after empty day", snap.Streak)
	}
	if len(snap.Meals) != 0 {
		t.Errorf("meals = %d, want 0", len(snap.Meals))
	}

	var lastActive string
	store.Get(KeyLastActive, &lastActive)
	stamped, _ := time.Parse(time.RFC3339, lastActive)
	if !stamped.Equal(clock.now) {
		t.Errorf("last active = %v, want %v", stamped, clock.now)
	}
}

// Scenario: a meal logged on day D, next Load on day D+1.
func TestRolloverIncrementsStreakAfterLoggedMeal(t *testing.T) {
	ledger, store, clock := testLedger(t)
	store.Set(KeyStreak, 2)
	store.Set(KeyLastActive, day1.Format(time.RFC3339))

	if _, err := ledger.AddMeal(sampleMeal(models.MealTypeLunch, 500, 30, 50, 15)); err != nil {
		t.Fatalf("AddMeal: %v", err)
	}

	clock.now = day1.AddDate(0, 0, 1)
	snap, err := ledger.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Streak != 3 {
		t.Errorf("streak = %d, want 3", snap.Streak)
	}
	if len(snap.Meals) != 0 {
		t.Errorf("meals = %d, want 0 after rollover", len(snap.Meals))
	}
}

func TestLoadSameDayIsIdempotent(t *testing.T) {
	ledger, store, _ := testLedger(t)
	store.Set(KeyStreak, 5)
	store.Set(KeyLastActive, day1.Format(time.RFC3339))
	ledger.AddMeal(sampleMeal(models.MealTypeBreakfast, 300, 20, 30, 10))

	first, err := ledger.Load()
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	second, err := ledger.Load()
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}

	if first.Streak != 5 || second.Streak != 5 {
		t.Errorf("streaks = %d, %d, want 5, 5", first.Streak, second.Streak)
	}
	if len(first.Meals) != 1 || len(second.Meals) != 1 {
		t.Errorf("meal counts = %d, %d, want 1, 1", len(first.Meals), len(second.Meals))
	}
}

// A multi-day gap still applies a single increment-or-reset step.
func TestMultiDayGapAppliesSingleStep(t *testing.T) {
	ledger, store, _ := testLedger(t)
	store.Set(KeyStreak, 4)
	store.Set(KeyLastActive, day1.AddDate(0, 0, -5).Format(time.RFC3339))
	store.Set(KeyMeals, []models.Meal{{ID: "old", MealType: models.MealTypeDinner,
		Items: []models.FoodLineItem{{Name: "pasta", Calories: 600}}, Calories: 600}})

	snap, err := ledger.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Streak != 5 {
		t.Errorf("streak = %d, want 5 (single +1 regardless of gap length)", snap.Streak)
	}
}

func TestAddMealComputesTotalsFromItems(t *testing.T) {
	ledger, _, _ := testLedger(t)

	meal, err := ledger.AddMeal(models.Meal{
		MealType: models.MealTypeDinner,
		// Stale denormalized totals must be overwritten.
		Calories: 9999,
		Items: []models.FoodLineItem{
			{Name: "chicken", Serving: "150g", Calories: 250, Protein: 45, Carbs: 0, Fat: 6},
			{Name: "rice", Serving: "200g", Calories: 260, Protein: 5, Carbs: 56, Fat: 1},
		},
	})
	if err != nil {
		t.Fatalf("AddMeal: %v", err)
	}
	if meal.Calories != 510 || meal.Protein != 50 || meal.Carbs != 56 || meal.Fat != 7 {
		t.Errorf("totals = %d/%d/%d/%d, want 510/50/56/7",
			meal.Calories, meal.Protein, meal.Carbs, meal.Fat)
	}
	if meal.ID == "" {
		t.Error("meal was not assigned an id")
	}
	if !meal.Timestamp.Equal(day1) {
		t.Errorf("timestamp = %v, want clock time %v", meal.Timestamp, day1)
	}
}

func TestAddMealRejectsEmptyItems(t *testing.T) {
	ledger, store, _ := testLedger(t)

	_, err := ledger.AddMeal(models.Meal{MealType: models.MealTypeSnack})
	if !errors.Is(err, ErrEmptyMeal) {
		t.Fatalf("err = %v, want ErrEmptyMeal", err)
	}
	if _, ok := store.data[KeyMeals]; ok {
		t.Error("rejected meal was persisted")
	}
}

func TestAddMealRejectsUnknownType(t *testing.T) {
	ledger, _, _ := testLedger(t)

	_, err := ledger.AddMeal(sampleMeal("Brunch", 400, 20, 40, 12))
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "meal_type" {
		t.Fatalf("err = %v, want ValidationError on meal_type", err)
	}
}

// Scenario: add two meals, edit the first, delete the second.
func TestEditThenDelete(t *testing.T) {
	ledger, _, _ := testLedger(t)

	m1, _ := ledger.AddMeal(sampleMeal(models.MealTypeBreakfast, 300, 20, 30, 10))
	m2, _ := ledger.AddMeal(sampleMeal(models.MealTypeLunch, 600, 35, 60, 20))

	edited, err := ledger.EditMeal(m1.ID, models.Meal{
		MealType: models.MealTypeBreakfast,
		Items: []models.FoodLineItem{
			{Name: "bigger breakfast", Serving: "300g", Calories: 450, Protein: 30, Carbs: 45, Fat: 15},
		},
	})
	if err != nil {
		t.Fatalf("EditMeal: %v", err)
	}
	if edited.ID != m1.ID {
		t.Errorf("edit changed id: %s -> %s", m1.ID, edited.ID)
	}
	if !edited.Timestamp.Equal(m1.Timestamp) {
		t.Error("edit did not preserve the original timestamp")
	}
	if edited.Calories != 450 {
		t.Errorf("edited calories = %d, want 450", edited.Calories)
	}

	snap := ledger.Progress()
	if len(snap.Meals) != 2 {
		t.Fatalf("meals = %d after edit, want 2", len(snap.Meals))
	}
	if snap.Meals[0].ID != m1.ID || snap.Meals[1].ID != m2.ID {
		t.Error("edit did not preserve meal order")
	}

	if err := ledger.DeleteMeal(m2.ID); err != nil {
		t.Fatalf("DeleteMeal: %v", err)
	}
	snap = ledger.Progress()
	if len(snap.Meals) != 1 || snap.Meals[0].ID != m1.ID {
		t.Errorf("meals after delete = %+v, want only the edited first meal", snap.Meals)
	}
	if snap.Meals[0].Calories != 450 {
		t.Errorf("surviving meal calories = %d, want 450", snap.Meals[0].Calories)
	}
}

func TestEditUnknownIDIsNoop(t *testing.T) {
	ledger, _, _ := testLedger(t)
	ledger.AddMeal(sampleMeal(models.MealTypeDinner, 700, 40, 70, 22))

	meal, err := ledger.EditMeal("missing", sampleMeal(models.MealTypeDinner, 100, 5, 10, 3))
	if err != nil {
		t.Fatalf("EditMeal: %v", err)
	}
	if meal != nil {
		t.Errorf("edit of unknown id returned %+v, want nil", meal)
	}
	if snap := ledger.Progress(); len(snap.Meals) != 1 || snap.Meals[0].Calories != 700 {
		t.Error("edit of unknown id changed the meal list")
	}
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	ledger, _, _ := testLedger(t)
	ledger.AddMeal(sampleMeal(models.MealTypeSnack, 150, 8, 15, 6))

	if err := ledger.DeleteMeal("missing"); err != nil {
		t.Fatalf("DeleteMeal: %v", err)
	}
	if snap := ledger.Progress(); len(snap.Meals) != 1 {
		t.Error("delete of unknown id changed the meal list")
	}
}

func TestSetDailyGoalBounds(t *testing.T) {
	tests := []struct {
		value  int
		wantOK bool
	}{
		{499, false},
		{500, true},
		{2200, true},
		{10000, true},
		{10001, false},
	}
	for _, tt := range tests {
		ledger, store, _ := testLedger(t)
		_, err := ledger.SetDailyGoal(tt.value)
		if tt.wantOK {
			if err != nil {
				t.Errorf("SetDailyGoal(%d) = %v, want success", tt.value, err)
			}
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "daily_goal" {
			t.Errorf("SetDailyGoal(%d) = %v, want ValidationError on daily_goal", tt.value, err)
		}
		if _, ok := store.data[KeyDailyGoal]; ok {
			t.Errorf("SetDailyGoal(%d) persisted an out-of-range goal", tt.value)
		}
	}
}

func TestSetMacroGoalsRejectsNegative(t *testing.T) {
	ledger, _, _ := testLedger(t)

	_, err := ledger.SetMacroGoals(models.Macros{Protein: 120, Carbs: -1, Fat: 50})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "carbs" {
		t.Fatalf("err = %v, want ValidationError on carbs", err)
	}

	macros, err := ledger.SetMacroGoals(models.Macros{Protein: 120, Carbs: 180, Fat: 50})
	if err != nil {
		t.Fatalf("SetMacroGoals: %v", err)
	}
	if got := ledger.Goals().Macros; got != macros {
		t.Errorf("goals after set = %+v, want %+v", got, macros)
	}
}

func TestWriteFailureIsSurfaced(t *testing.T) {
	ledger, store, _ := testLedger(t)
	store.failSets = true

	if _, err := ledger.AddMeal(sampleMeal(models.MealTypeLunch, 400, 25, 40, 12)); err == nil {
		t.Error("AddMeal succeeded despite failing store")
	}
	if _, err := ledger.SetDailyGoal(1800); err == nil {
		t.Error("SetDailyGoal succeeded despite failing store")
	}
}

func TestReadFailureFallsBackToDefaults(t *testing.T) {
	ledger, store, _ := testLedger(t)
	store.failGets = true
	store.failSets = false

	snap := ledger.Progress()
	if len(snap.Meals) != 0 || snap.Goals.DailyCalorieGoal != 2000 || snap.Streak != 0 {
		t.Errorf("failing reads did not fall back to defaults: %+v", snap)
	}
}

func TestProgressAggregates(t *testing.T) {
	ledger, _, _ := testLedger(t)
	ledger.SetDailyGoal(2000)
	ledger.AddMeal(sampleMeal(models.MealTypeBreakfast, 500, 30, 50, 15))
	ledger.AddMeal(sampleMeal(models.MealTypeLunch, 700, 40, 80, 20))

	snap := ledger.Progress()
	if snap.TotalCalories != 1200 {
		t.Errorf("total calories = %d, want 1200", snap.TotalCalories)
	}
	if snap.TotalMacros != (models.Macros{Protein: 70, Carbs: 130, Fat: 35}) {
		t.Errorf("total macros = %+v", snap.TotalMacros)
	}
	if snap.RemainingCalories != 800 {
		t.Errorf("remaining = %d, want 800", snap.RemainingCalories)
	}
	if snap.CaloriePercent != 60 {
		t.Errorf("calorie percent = %d, want 60", snap.CaloriePercent)
	}
}
