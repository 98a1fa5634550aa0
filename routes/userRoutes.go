package routes

import (
	"fixit-be/controllers"
	"fixit-be/middlewares"

	"github.com/gin-gonic/gin"
)

// UserRoutes sets up the profile routes
func UserRoutes(r *gin.Engine) {
	user := r.Group("/api/user")
	{
		user.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)
		user.PUT("/profile", middlewares.AuthMiddleware(), controllers.UpdateProfile)
	}
}
