package routes

import (
	"github.com/gin-gonic/gin"

	"hiretrack_backend/internal/handlers"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.CandidateHandler.RegisterRoutes(api)
		appHandlers.InterviewHandler.RegisterRoutes(api)
		appHandlers.FeedbackHandler.RegisterRoutes(api)
		appHandlers.DashboardHandler.RegisterRoutes(api)
	}
}
