package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AbdullahAljelamneh/repright-application/models"
)

func TestDecodeRecipePayload(t *testing.T) {
	fenced := "```json\n" + `{
		"title": "Lemon Herb Chicken",
		"calories": 480,
		"protein": 42,
		"carbs": 30,
		"fat": 18,
		"servings": 2,
		"readyInMinutes": 35,
		"summary": "Bright and zesty.",
		"ingredients": ["2 chicken breasts", "1 lemon"],
		"instructions": ["Season.", "Roast."]
	}` + "\n```"

	recipe, err := decodeRecipePayload(fenced, models.MealTypeDinner, 600)
	if err != nil {
		t.Fatalf("decodeRecipePayload: %v", err)
	}
	if recipe.Title != "Lemon Herb Chicken" || recipe.Calories != 480 || recipe.Servings != 2 {
		t.Errorf("recipe = %+v", recipe)
	}
	if len(recipe.Ingredients) != 2 || len(recipe.Instructions) != 2 {
		t.Errorf("lists = %d ingredients, %d steps", len(recipe.Ingredients), len(recipe.Instructions))
	}
}

func TestDecodeRecipePayloadDefaults(t *testing.T) {
	recipe, err := decodeRecipePayload(`{"title": "Mystery Bowl"}`, models.MealTypeLunch, 700)
	if err != nil {
		t.Fatalf("decodeRecipePayload: %v", err)
	}
	if recipe.Calories != 700 {
		t.Errorf("calories = %d, want target 700", recipe.Calories)
	}
	// Missing macros derive from the target at a 25/50/25 split.
	if recipe.Protein != 44 || recipe.Carbs != 88 || recipe.Fat != 19 {
		t.Errorf("macros = %d/%d/%d, want 44/88/19", recipe.Protein, recipe.Carbs, recipe.Fat)
	}
	if recipe.Servings != 1 || recipe.ReadyInMinutes != 30 || recipe.Summary == "" {
		t.Errorf("defaults not applied: %+v", recipe)
	}
}

func TestDecodeRecipePayloadErrors(t *testing.T) {
	if _, err := decodeRecipePayload("not json at all", models.MealTypeLunch, 500); err == nil {
		t.Error("invalid JSON did not error")
	}
	if _, err := decodeRecipePayload(`{"calories": 500}`, models.MealTypeLunch, 500); err == nil {
		t.Error("missing title did not error")
	}
}

func TestGenerateRecipe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") == "" || r.Header.Get("anthropic-version") == "" {
			http.Error(w, "missing headers", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content": [{"text": "{\"title\": \"Miso Salmon\", \"calories\": 520}"}]}`))
	}))
	defer srv.Close()

	ai := &RecipeAIService{client: srv.Client(), apiKey: "test-key", model: "test-model", baseURL: srv.URL}
	recipe, err := ai.GenerateRecipe(RecipeParams{
		MealType: models.MealTypeDinner, TargetCalories: 600,
		Diet: "balanced", Cuisine: "japanese", Budget: "moderate",
	})
	if err != nil {
		t.Fatalf("GenerateRecipe: %v", err)
	}
	if recipe.Title != "Miso Salmon" || recipe.Calories != 520 {
		t.Errorf("recipe = %+v", recipe)
	}
}

func TestGenerateRecipeWithoutKey(t *testing.T) {
	ai := &RecipeAIService{client: http.DefaultClient, model: "test-model", baseURL: "http://127.0.0.1:0"}
	if _, err := ai.GenerateRecipe(RecipeParams{MealType: models.MealTypeLunch, TargetCalories: 500}); err == nil {
		t.Error("missing api key did not error")
	}
}

func TestBuildRecipePrompt(t *testing.T) {
	prompt := buildRecipePrompt(RecipeParams{
		MealType: models.MealTypeBreakfast, TargetCalories: 450,
		Diet: "vegetarian", Cuisine: "italian", Budget: "budget",
		Allergies: []string{"peanuts", "shellfish"},
	})
	for _, want := range []string{"breakfast", "italian", "vegetarian", "450", "peanuts, shellfish", "ONLY valid JSON"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	if !strings.Contains(buildRecipePrompt(RecipeParams{MealType: models.MealTypeLunch}), "none") {
		t.Error("empty allergy list should render as none")
	}
}
