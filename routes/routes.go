package routes

import (
	"github.com/Khushal2406/stayfit/controllers"
	"github.com/Khushal2406/stayfit/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.GET("/search", controllers.SearchFoods)
		food.GET("/:name", controllers.GetFood)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("", controllers.LogFood)
		meals.GET("", controllers.GetMeals)
		meals.DELETE("/:mealId/foods/:foodId", controllers.DeleteLoggedFood)
	}

	nutrition := r.Group("/nutrition")
	nutrition.Use(middlewares.AuthMiddleware())
	{
		nutrition.GET("/summary", controllers.GetSummary)
		nutrition.GET("/weekly", controllers.GetWeekly)
	}

	return r
}
