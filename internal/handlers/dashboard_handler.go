package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hiretrack_backend/internal/middleware"
	"hiretrack_backend/internal/services"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

// RegisterRoutes регистрирует сводку дашборда и справочник ролей
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	{
		dashboard.GET("/kpis", h.KPIs)
	}

	roles := rg.Group("/roles")
	roles.Use(middleware.AuthMiddleware())
	{
		roles.GET("", h.Roles)
	}
}

func (h *DashboardHandler) KPIs(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.KPIs())
}

func (h *DashboardHandler) Roles(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.Roles())
}
