package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hiretrack_backend/internal/middleware"
	"hiretrack_backend/internal/models"
	"hiretrack_backend/internal/services"
	"hiretrack_backend/internal/services/dto"
)

type FeedbackHandler struct {
	*BaseHandler
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(base *BaseHandler, feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		BaseHandler:     base,
		feedbackService: feedbackService,
	}
}

// RegisterRoutes регистрирует маршруты отзывов под кандидатом.
// Подача отзыва - прерогатива панелистов; чтение списка счетчики
// просмотров не трогает, для этого есть отдельный POST /views.
func (h *FeedbackHandler) RegisterRoutes(rg *gin.RouterGroup) {
	feedback := rg.Group("/candidates/:id/feedback")
	feedback.Use(middleware.AuthMiddleware())
	{
		feedback.GET("", h.List)
		feedback.POST("/views", h.MarkViewed)

		submit := feedback.Group("")
		submit.Use(middleware.RequireRoles(models.UserRolePanelist))
		{
			submit.POST("", h.Submit)
		}
	}
}

func (h *FeedbackHandler) List(c *gin.Context) {
	candidateID, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	items := h.feedbackService.ListByCandidate(candidateID)
	c.JSON(http.StatusOK, dto.FeedbackListResponse{Items: items, Total: len(items)})
}

func (h *FeedbackHandler) Submit(c *gin.Context) {
	candidateID, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitFeedbackRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	created := h.feedbackService.Submit(candidateID, userID, &req)
	c.JSON(http.StatusCreated, created)
}

func (h *FeedbackHandler) MarkViewed(c *gin.Context) {
	candidateID, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.feedbackService.MarkViewed(candidateID)
	c.JSON(http.StatusOK, gin.H{"message": "Feedback marked as viewed"})
}
