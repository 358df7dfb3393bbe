package controllers

import (
	"net/http"

	"github.com/AbdullahAljelamneh/repright-application/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func newFoodService() *services.FoodService {
	rek, err := services.NewRekognitionService()
	if err != nil {
		// Photo recognition is optional; text search still works without it.
		logrus.WithError(err).Warn("rekognition unavailable")
		rek = nil
	}
	return services.NewFoodService(services.NewSpoonacularService(), services.NewOpenFoodFactsService(), rek)
}

func SearchFoods(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	results, err := newFoodService().Search(query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

type RecognizeInput struct {
	Image string `json:"image" binding:"required"` // data URI with base64 payload
}

func RecognizeFood(c *gin.Context) {
	var input RecognizeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := newFoodService().RecognizePhoto(input.Image)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
