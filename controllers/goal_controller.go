package controllers

import (
	"errors"
	"net/http"

	"github.com/AbdullahAljelamneh/repright-application/models"
	"github.com/AbdullahAljelamneh/repright-application/services"
	"github.com/AbdullahAljelamneh/repright-application/utils"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Hub *services.RealtimeHub
}

func NewGoalController(hub *services.RealtimeHub) *GoalController {
	return &GoalController{Hub: hub}
}

func (gc *GoalController) GetGoals(c *gin.Context) {
	goals := ledgerFor(c).Goals()
	c.JSON(http.StatusOK, gin.H{
		"goals": goals,
		// Live preview of what the macro targets add up to in calories.
		"macro_calories": utils.CaloriesFromMacros(goals.Macros.Protein, goals.Macros.Carbs, goals.Macros.Fat),
	})
}

type DailyGoalInput struct {
	DailyGoal int `json:"daily_goal" binding:"required"`
}

func (gc *GoalController) UpdateDailyGoal(c *gin.Context) {
	var input DailyGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ledger := ledgerFor(c)
	value, err := ledger.SetDailyGoal(input.DailyGoal)
	if err != nil {
		gc.writeGoalError(c, err)
		return
	}

	gc.Hub.BroadcastProgress(c.GetUint("userID"), ledger.Progress())
	c.JSON(http.StatusOK, gin.H{"daily_goal": value})
}

func (gc *GoalController) UpdateMacroGoals(c *gin.Context) {
	var input models.Macros
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ledger := ledgerFor(c)
	macros, err := ledger.SetMacroGoals(input)
	if err != nil {
		gc.writeGoalError(c, err)
		return
	}

	gc.Hub.BroadcastProgress(c.GetUint("userID"), ledger.Progress())
	c.JSON(http.StatusOK, gin.H{
		"macro_goals":    macros,
		"macro_calories": utils.CaloriesFromMacros(macros.Protein, macros.Carbs, macros.Fat),
	})
}

func (gc *GoalController) writeGoalError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
