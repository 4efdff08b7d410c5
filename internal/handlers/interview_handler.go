package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hiretrack_backend/internal/middleware"
	"hiretrack_backend/internal/models"
	"hiretrack_backend/internal/services"
	"hiretrack_backend/internal/services/dto"
)

type InterviewHandler struct {
	*BaseHandler
	interviewService services.InterviewService
}

func NewInterviewHandler(base *BaseHandler, interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		BaseHandler:      base,
		interviewService: interviewService,
	}
}

// RegisterRoutes регистрирует маршруты интервью под кандидатом.
// Панелисты могут переключать завершенность, но не заводить интервью.
func (h *InterviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	interviews := rg.Group("/candidates/:id/interviews")
	interviews.Use(middleware.AuthMiddleware())
	{
		interviews.GET("", h.List)
		interviews.PUT("/:interviewId", h.Update)

		manage := interviews.Group("")
		manage.Use(middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleTAMember))
		{
			manage.POST("", h.Create)
		}
	}
}

func (h *InterviewHandler) List(c *gin.Context) {
	candidateID, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	items, total := h.interviewService.ListByCandidate(candidateID)
	c.JSON(http.StatusOK, dto.InterviewListResponse{Items: items, Total: total})
}

func (h *InterviewHandler) Create(c *gin.Context) {
	candidateID, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	interview := h.interviewService.Create(candidateID, &req)
	c.JSON(http.StatusCreated, interview)
}

// Update правит интервью; при изменении completed в ответе приходит
// пересчитанный статус кандидата
func (h *InterviewHandler) Update(c *gin.Context) {
	candidateID, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	interviewID, err := ParseParamInt(c, "interviewId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.interviewService.Update(c.Request.Context(), candidateID, interviewID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
