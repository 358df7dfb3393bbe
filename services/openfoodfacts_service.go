package services

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/AbdullahAljelamneh/repright-application/models"
)

// OpenFoodFactsService is the keyless fallback food-search provider.
type OpenFoodFactsService struct {
	client  *http.Client
	baseURL string
}

func NewOpenFoodFactsService() *OpenFoodFactsService {
	return &OpenFoodFactsService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://world.openfoodfacts.org",
	}
}

type offSearchResponse struct {
	Products []struct {
		ID          string `json:"_id"`
		ProductName string `json:"product_name"`
		Brands      string `json:"brands"`
		ImageURL    string `json:"image_url"`
		ServingSize string `json:"serving_size"`
		Nutriments  struct {
			EnergyKcal100g float64 `json:"energy-kcal_100g"`
			Energy100g     float64 `json:"energy_100g"` // kJ when kcal is absent
			Proteins100g   float64 `json:"proteins_100g"`
			Carbs100g      float64 `json:"carbohydrates_100g"`
			Fat100g        float64 `json:"fat_100g"`
		} `json:"nutriments"`
	} `json:"products"`
}

func (s *OpenFoodFactsService) SearchFoods(query string) ([]models.FoodResult, error) {
	u := fmt.Sprintf("%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=20"+
		"&fields=product_name,brands,image_url,nutriments,serving_size",
		s.baseURL, url.QueryEscape(query))

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("openfoodfacts search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openfoodfacts read: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openfoodfacts status %d: %s", resp.StatusCode, string(body))
	}

	var sr offSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("openfoodfacts decode: %w", err)
	}

	results := make([]models.FoodResult, 0, len(sr.Products))
	for _, p := range sr.Products {
		if p.ProductName == "" {
			continue
		}
		kcal := p.Nutriments.EnergyKcal100g
		if kcal == 0 && p.Nutriments.Energy100g > 0 {
			kcal = p.Nutriments.Energy100g / 4.184
		}
		brand := p.Brands
		if brand == "" {
			brand = "Generic"
		}
		serving := p.ServingSize
		if serving == "" {
			serving = "100g"
		}
		results = append(results, models.FoodResult{
			ID:          p.ID,
			Name:        p.ProductName,
			Brand:       brand,
			Image:       p.ImageURL,
			ServingSize: serving,
			Calories:    int(math.Round(kcal)),
			Protein:     int(math.Round(p.Nutriments.Proteins100g)),
			Carbs:       int(math.Round(p.Nutriments.Carbs100g)),
			Fat:         int(math.Round(p.Nutriments.Fat100g)),
		})
	}
	return results, nil
}
