package routes

import (
	"fixit-be/config"
	"fixit-be/controllers"
	"fixit-be/middlewares"
	"fixit-be/models"

	"github.com/gin-gonic/gin"
)

const dailyIssueLimit = 5

// IssueRoutes sets up the issue routes. Triage operations (status,
// priority, assignment, delete, analytics) are admin-only.
func IssueRoutes(r *gin.Engine) {
	admin := string(models.RoleAdmin)

	create := []gin.HandlerFunc{middlewares.AuthMiddleware()}
	if config.RedisEnabled() {
		create = append(create, middlewares.IssueRateLimiter(dailyIssueLimit))
	}
	create = append(create, controllers.CreateIssue)

	issue := r.Group("/api/issue")
	{
		issue.POST("/create", create...)
		issue.GET("", middlewares.AuthMiddleware(), controllers.GetAllIssues)
		issue.GET("/stream", middlewares.AuthMiddleware(), controllers.StreamIssues)
		issue.GET("/analytics", middlewares.AuthMiddleware(), middlewares.RequireRole(admin), controllers.GetIssueAnalytics)
		issue.GET("/:id", middlewares.AuthMiddleware(), controllers.GetIssue)
		issue.PATCH("/:id/status", middlewares.AuthMiddleware(), middlewares.RequireRole(admin), controllers.UpdateIssueStatus)
		issue.PATCH("/:id/priority", middlewares.AuthMiddleware(), middlewares.RequireRole(admin), controllers.UpdateIssuePriority)
		issue.PATCH("/:id/assign", middlewares.AuthMiddleware(), middlewares.RequireRole(admin), controllers.AssignIssue)
		issue.DELETE("/:id", middlewares.AuthMiddleware(), middlewares.RequireRole(admin), controllers.DeleteIssue)
	}
}
