package controllers

import (
	"errors"
	"net/http"

	"github.com/AbdullahAljelamneh/repright-application/models"
	"github.com/AbdullahAljelamneh/repright-application/services"

	"github.com/gin-gonic/gin"
)

func planServiceFor(c *gin.Context) *services.MealPlanService {
	return services.NewMealPlanService(storeFor(c), services.NewRecipeAIService())
}

func GetMealPlan(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plan": planServiceFor(c).Plan()})
}

func GenerateMealPlan(c *gin.Context) {
	plan, err := planServiceFor(c).GenerateWeeklyPlan()
	if err != nil {
		if errors.Is(err, services.ErrNoPreferences) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "set your meal preferences before generating a plan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// GetGroceryList turns the current weekly plan into a categorized shopping
// list. Empty when no plan was generated yet.
func GetGroceryList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"grocery_list": planServiceFor(c).GroceryList()})
}

func GetPreferences(c *gin.Context) {
	prefs, ok := planServiceFor(c).Preferences()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no preferences saved"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func SavePreferences(c *gin.Context) {
	var input models.Preferences
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := planServiceFor(c).SavePreferences(input); err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "preferences saved"})
}
