package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hiretrack_backend/internal/config"
	"hiretrack_backend/internal/middleware"
	"hiretrack_backend/internal/models"
	"hiretrack_backend/internal/services"
	"hiretrack_backend/internal/services/dto"
)

type CandidateHandler struct {
	*BaseHandler
	candidateService services.CandidateService
}

func NewCandidateHandler(base *BaseHandler, candidateService services.CandidateService) *CandidateHandler {
	return &CandidateHandler{
		BaseHandler:      base,
		candidateService: candidateService,
	}
}

// RegisterRoutes регистрирует маршруты кандидатов. Чтение доступно всем
// аутентифицированным ролям, изменения - admin и ta_member.
func (h *CandidateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	candidates := rg.Group("/candidates")
	candidates.Use(middleware.AuthMiddleware())
	{
		candidates.GET("", h.List)
		candidates.GET("/:id", h.Get)

		manage := candidates.Group("")
		manage.Use(middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleTAMember))
		{
			manage.POST("", h.Create)
			manage.POST("/seed", h.Seed)
			manage.PUT("/:id", h.Update)
			manage.DELETE("/:id", h.Delete)
		}
	}
}

// List отдает кандидатов с опциональной фильтрацией по строке поиска,
// департаменту и статусу. Фильтры комбинируются по AND.
func (h *CandidateHandler) List(c *gin.Context) {
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	department := c.Query("department")
	status := c.Query("status")

	items := h.candidateService.List()

	filtered := make([]models.Candidate, 0, len(items))
	for _, candidate := range items {
		if search != "" {
			haystack := strings.ToLower(candidate.FirstName + " " + candidate.LastName + " " + candidate.Email)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		if department != "" && candidate.Company.Department != department {
			continue
		}
		if status != "" && string(candidate.Status) != status {
			continue
		}
		filtered = append(filtered, candidate)
	}

	c.JSON(http.StatusOK, dto.CandidateListResponse{Items: filtered, Total: len(filtered)})
}

func (h *CandidateHandler) Get(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	candidate, err := h.candidateService.Get(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

func (h *CandidateHandler) Create(c *gin.Context) {
	var req dto.CreateCandidateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	candidate := h.candidateService.Create(&req)
	c.JSON(http.StatusCreated, candidate)
}

func (h *CandidateHandler) Update(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateCandidateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	candidate, err := h.candidateService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

func (h *CandidateHandler) Delete(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.candidateService.Delete(id)
	c.JSON(http.StatusOK, gin.H{"message": "Candidate deleted"})
}

// Seed загружает демо-кандидатов из внешнего каталога
func (h *CandidateHandler) Seed(c *gin.Context) {
	var req dto.SeedCandidatesRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	if req.Limit == 0 {
		req.Limit = config.GetConfig().Seed.Limit
	}

	seeded, err := h.candidateService.SeedFromRemote(c.Request.Context(), req.Limit, req.Skip)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SeedCandidatesResponse{Seeded: seeded})
}
