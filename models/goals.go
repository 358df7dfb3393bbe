package models

// Daily calorie goal bounds and presets.
const (
	MinDailyCalorieGoal = 500
	MaxDailyCalorieGoal = 10000

	CaloriePresetLoss     = 1500
	CaloriePresetMaintain = 2000
	CaloriePresetGain     = 2500

	DefaultDailyCalorieGoal = CaloriePresetMaintain
)

// Macros holds protein/carbs/fat in grams. It doubles as a goal record and
// as an aggregate total.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// DefaultMacroGoals are applied on first run until the user edits them.
var DefaultMacroGoals = Macros{Protein: 150, Carbs: 200, Fat: 65}

// Goals bundles the calorie target with the macro targets. Goals survive
// day rollover unchanged.
type Goals struct {
	DailyCalorieGoal int    `json:"daily_calorie_goal"`
	Macros           Macros `json:"macro_goals"`
}

func DefaultGoals() Goals {
	return Goals{DailyCalorieGoal: DefaultDailyCalorieGoal, Macros: DefaultMacroGoals}
}
