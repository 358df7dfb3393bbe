package routes

import (
	"github.com/AbdullahAljelamneh/repright-application/controllers"
	"github.com/AbdullahAljelamneh/repright-application/middlewares"
	"github.com/AbdullahAljelamneh/repright-application/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	mealCtrl := controllers.NewMealController(hub)
	goalCtrl := controllers.NewGoalController(hub)
	rtCtrl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/dashboard", controllers.GetDashboard)

		api.POST("/meals", mealCtrl.AddMeal)
		api.PUT("/meals/:id", mealCtrl.UpdateMeal)
		api.DELETE("/meals/:id", mealCtrl.DeleteMeal)

		api.GET("/goals", goalCtrl.GetGoals)
		api.PUT("/goals/daily", goalCtrl.UpdateDailyGoal)
		api.PUT("/goals/macros", goalCtrl.UpdateMacroGoals)

		api.GET("/foods/search", controllers.SearchFoods)
		api.POST("/foods/recognize", controllers.RecognizeFood)

		api.GET("/mealplan", controllers.GetMealPlan)
		api.POST("/mealplan/generate", controllers.GenerateMealPlan)
		api.GET("/mealplan/grocery-list", controllers.GetGroceryList)
		api.GET("/mealplan/preferences", controllers.GetPreferences)
		api.PUT("/mealplan/preferences", controllers.SavePreferences)

		api.GET("/ws/progress", rtCtrl.ProgressWS)
	}

	return r
}
