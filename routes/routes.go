package routes

import (
	"github.com/mdaamman/caloriestracker/controllers"
	"github.com/mdaamman/caloriestracker/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public routes
	r.GET("/", controllers.Home)
	r.POST("/signup", controllers.Signup)
	r.POST("/login", controllers.Login)

	// Protected routes
	auth := r.Group("")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/logout", controllers.Logout)
		auth.GET("/dashboard", controllers.Dashboard)
		auth.GET("/profile", controllers.GetProfile)
		auth.POST("/profile", controllers.UpdateProfile)
		auth.GET("/add-food", controllers.GetAddFood)
		auth.POST("/add-food", controllers.AddFoodLog)
		auth.GET("/delete-log/:id", controllers.GetDeleteLog)
		auth.POST("/delete-log/:id", controllers.DeleteLog)
		auth.GET("/history", controllers.History)
		auth.GET("/weekly-summary", controllers.WeeklySummary)
	}

	return r
}
