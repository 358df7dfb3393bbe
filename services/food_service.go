package services

import (
	"fmt"

	"github.com/AbdullahAljelamneh/repright-application/models"

	"github.com/sirupsen/logrus"
)

// FoodService searches the primary provider and falls back to OpenFoodFacts
// when it fails or comes back empty. Photo recognition feeds the top
// detected label into the same search path.
type FoodService struct {
	spoon *SpoonacularService
	off   *OpenFoodFactsService
	rek   *RekognitionService
}

func NewFoodService(spoon *SpoonacularService, off *OpenFoodFactsService, rek *RekognitionService) *FoodService {
	return &FoodService{spoon: spoon, off: off, rek: rek}
}

func (s *FoodService) Search(query string) ([]models.FoodResult, error) {
	results, err := s.spoon.SearchFoods(query)
	if err == nil && len(results) > 0 {
		return results, nil
	}
	if err != nil {
		logrus.WithError(err).Warn("primary food search failed, falling back to OpenFoodFacts")
	}

	results, err = s.off.SearchFoods(query)
	if err != nil {
		return nil, fmt.Errorf("food search: %w", err)
	}
	return results, nil
}

func (s *FoodService) RecognizePhoto(base64Img string) ([]models.FoodResult, error) {
	if s.rek == nil {
		return nil, fmt.Errorf("photo recognition not configured")
	}
	labels, err := s.rek.RecognizeLabels(base64Img)
	if err != nil {
		return nil, fmt.Errorf("recognize photo: %w", err)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no food detected in image")
	}
	return s.Search(labels[0])
}
