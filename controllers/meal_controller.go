package controllers

import (
	"errors"
	"net/http"

	"github.com/AbdullahAljelamneh/repright-application/models"
	"github.com/AbdullahAljelamneh/repright-application/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Hub *services.RealtimeHub
}

func NewMealController(hub *services.RealtimeHub) *MealController {
	return &MealController{Hub: hub}
}

type MealInput struct {
	MealType string                `json:"meal_type"`
	Items    []models.FoodLineItem `json:"items"`
}

func (mc *MealController) AddMeal(c *gin.Context) {
	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ledger := ledgerFor(c)
	meal, err := ledger.AddMeal(models.Meal{MealType: input.MealType, Items: input.Items})
	if err != nil {
		mc.writeMealError(c, err)
		return
	}

	mc.Hub.BroadcastProgress(c.GetUint("userID"), ledger.Progress())
	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) UpdateMeal(c *gin.Context) {
	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ledger := ledgerFor(c)
	meal, err := ledger.EditMeal(c.Param("id"), models.Meal{MealType: input.MealType, Items: input.Items})
	if err != nil {
		mc.writeMealError(c, err)
		return
	}
	if meal == nil {
		// Unknown id: the ledger treats this as a no-op.
		c.JSON(http.StatusOK, gin.H{"message": "meal not found, nothing changed"})
		return
	}

	mc.Hub.BroadcastProgress(c.GetUint("userID"), ledger.Progress())
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) DeleteMeal(c *gin.Context) {
	ledger := ledgerFor(c)
	if err := ledger.DeleteMeal(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	mc.Hub.BroadcastProgress(c.GetUint("userID"), ledger.Progress())
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

func (mc *MealController) writeMealError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrEmptyMeal):
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal must contain at least one food item"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
