package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hiretrack_backend/internal/middleware"
	"hiretrack_backend/internal/services"
	"hiretrack_backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes регистрирует маршруты аутентификации
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)

		authed := auth.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("/logout", h.Logout)
			authed.GET("/session", h.Session)
		}
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.authService.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Session отдает сохраненный профиль; user=null если сессии нет
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SessionResponse{User: h.authService.CurrentSession()})
}
