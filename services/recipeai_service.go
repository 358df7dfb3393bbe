package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/AbdullahAljelamneh/repright-application/models"

	"github.com/google/uuid"
)

// RecipeAIService generates single recipes through the Anthropic messages
// API. Callers are expected to substitute a canned template on any failure.
type RecipeAIService struct {
	client  *http.Client
	apiKey  string
	model   string
	baseURL string
}

func NewRecipeAIService() *RecipeAIService {
	return &RecipeAIService{
		client:  &http.Client{Timeout: 30 * time.Second},
		apiKey:  os.Getenv("ANTHROPIC_API_KEY"),
		model:   "claude-3-5-sonnet-20241022",
		baseURL: "https://api.anthropic.com",
	}
}

// RecipeParams describes one meal slot to generate.
type RecipeParams struct {
	MealType       string
	TargetCalories int
	Diet           string
	Cuisine        string
	Allergies      []string
	Budget         string
}

func (r *RecipeAIService) GenerateRecipe(p RecipeParams) (*models.Recipe, error) {
	if r.apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
	}

	body := map[string]any{
		"model":      r.model,
		"max_tokens": 1024,
		"messages": []map[string]any{
			{"role": "user", "content": buildRecipePrompt(p)},
		},
	}
	b, _ := json.Marshal(body)

	req, err := http.NewRequest("POST", r.baseURL+"/v1/messages", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create recipe request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", r.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recipe api request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read recipe response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return nil, fmt.Errorf("decode recipe response: %w", err)
	}
	if len(out.Content) == 0 || strings.TrimSpace(out.Content[0].Text) == "" {
		return nil, fmt.Errorf("empty recipe response")
	}

	return decodeRecipePayload(out.Content[0].Text, p.MealType, p.TargetCalories)
}

func buildRecipePrompt(p RecipeParams) string {
	allergies := "none"
	if len(p.Allergies) > 0 {
		allergies = strings.Join(p.Allergies, ", ")
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate a healthy %s recipe with these requirements:\n\n", strings.ToLower(p.MealType))
	fmt.Fprintf(&sb, "- Cuisine: %s\n", p.Cuisine)
	fmt.Fprintf(&sb, "- Diet type: %s\n", p.Diet)
	fmt.Fprintf(&sb, "- Target calories: %d\n", p.TargetCalories)
	fmt.Fprintf(&sb, "- Budget: %s\n", p.Budget)
	fmt.Fprintf(&sb, "- Allergies to avoid: %s\n", allergies)
	fmt.Fprintf(&sb, "- Make it different from typical %s meals\n\n", strings.ToLower(p.MealType))
	sb.WriteString(`Return ONLY valid JSON in this exact format (no markdown, no explanations):
{
  "title": "Recipe name",
  "calories": 500,
  "protein": 25,
  "carbs": 45,
  "fat": 15,
  "servings": 1,
  "readyInMinutes": 30,
  "summary": "Brief description of the dish",
  "ingredients": ["ingredient 1 with amount", "ingredient 2 with amount"],
  "instructions": ["Step 1", "Step 2"]
}`)
	return sb.String()
}

// decodeRecipePayload parses the model's JSON reply, tolerating markdown
// code fences and filling sane defaults for missing fields.
func decodeRecipePayload(text, mealType string, targetCalories int) (*models.Recipe, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var payload struct {
		Title          string   `json:"title"`
		Calories       int      `json:"calories"`
		Protein        int      `json:"protein"`
		Carbs          int      `json:"carbs"`
		Fat            int      `json:"fat"`
		Servings       int      `json:"servings"`
		ReadyInMinutes int      `json:"readyInMinutes"`
		Summary        string   `json:"summary"`
		Ingredients    []string `json:"ingredients"`
		Instructions   []string `json:"instructions"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("invalid recipe JSON: %w", err)
	}
	if payload.Title == "" {
		return nil, fmt.Errorf("recipe JSON missing title")
	}

	recipe := &models.Recipe{
		ID:             uuid.NewString(),
		Title:          payload.Title,
		Calories:       payload.Calories,
		Protein:        payload.Protein,
		Carbs:          payload.Carbs,
		Fat:            payload.Fat,
		Servings:       payload.Servings,
		ReadyInMinutes: payload.ReadyInMinutes,
		Summary:        payload.Summary,
		Ingredients:    payload.Ingredients,
		Instructions:   payload.Instructions,
	}
	if recipe.Calories <= 0 {
		recipe.Calories = targetCalories
	}
	if recipe.Protein <= 0 {
		recipe.Protein = int(math.Round(float64(targetCalories) * 0.25 / 4))
	}
	if recipe.Carbs <= 0 {
		recipe.Carbs = int(math.Round(float64(targetCalories) * 0.50 / 4))
	}
	if recipe.Fat <= 0 {
		recipe.Fat = int(math.Round(float64(targetCalories) * 0.25 / 9))
	}
	if recipe.Servings <= 0 {
		recipe.Servings = 1
	}
	if recipe.ReadyInMinutes <= 0 {
		recipe.ReadyInMinutes = 30
	}
	if recipe.Summary == "" {
		recipe.Summary = "Delicious and nutritious " + strings.ToLower(mealType) + "."
	}
	return recipe, nil
}
