package services

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/AbdullahAljelamneh/repright-application/models"
)

// SpoonacularService is the primary food-search provider.
type SpoonacularService struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

func NewSpoonacularService() *SpoonacularService {
	return &SpoonacularService{
		apiKey:  os.Getenv("SPOONACULAR_API_KEY"),
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://api.spoonacular.com",
	}
}

type ingredientSearchResponse struct {
	Results []struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Image string `json:"image"`
	} `json:"results"`
}

type ingredientInfoResponse struct {
	Nutrition struct {
		Nutrients []struct {
			Name   string  `json:"name"`
			Amount float64 `json:"amount"`
		} `json:"nutrients"`
	} `json:"nutrition"`
}

// SearchFoods looks up ingredients matching the query and fetches per-100g
// nutrition for each. Hits without calorie data are dropped.
func (s *SpoonacularService) SearchFoods(query string) ([]models.FoodResult, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("SPOONACULAR_API_KEY not set")
	}

	u := fmt.Sprintf("%s/food/ingredients/search?query=%s&number=10&metaInformation=true&apiKey=%s",
		s.baseURL, url.QueryEscape(query), s.apiKey)
	var sr ingredientSearchResponse
	if err := s.getJSON(u, &sr); err != nil {
		return nil, fmt.Errorf("spoonacular search: %w", err)
	}

	results := make([]models.FoodResult, 0, len(sr.Results))
	for _, ing := range sr.Results {
		nut, err := s.ingredientNutrition(ing.ID)
		if err != nil {
			// One bad ingredient should not sink the whole search.
			continue
		}
		if nut["Calories"] <= 0 {
			continue
		}
		image := ""
		if ing.Image != "" {
			image = "https://img.spoonacular.com/ingredients_100x100/" + ing.Image
		}
		results = append(results, models.FoodResult{
			ID:          fmt.Sprintf("spoonacular-%d", ing.ID),
			Name:        ing.Name,
			Brand:       "Generic",
			Image:       image,
			ServingSize: "100g",
			Calories:    int(math.Round(nut["Calories"])),
			Protein:     int(math.Round(nut["Protein"])),
			Carbs:       int(math.Round(nut["Carbohydrates"])),
			Fat:         int(math.Round(nut["Fat"])),
		})
	}
	return results, nil
}

func (s *SpoonacularService) ingredientNutrition(id int) (map[string]float64, error) {
	u := fmt.Sprintf("%s/food/ingredients/%d/information?amount=100&unit=grams&apiKey=%s",
		s.baseURL, id, s.apiKey)
	var ir ingredientInfoResponse
	if err := s.getJSON(u, &ir); err != nil {
		return nil, fmt.Errorf("spoonacular nutrition for %d: %w", id, err)
	}
	nut := make(map[string]float64, len(ir.Nutrition.Nutrients))
	for _, n := range ir.Nutrition.Nutrients {
		nut[n.Name] = n.Amount
	}
	return nut, nil
}

func (s *SpoonacularService) getJSON(u string, out any) error {
	resp, err := s.client.Get(u)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}
	return json.Unmarshal(body, out)
}
