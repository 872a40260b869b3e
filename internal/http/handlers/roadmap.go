package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/aspirepath-backend/internal/domain"
	"github.com/yungbote/aspirepath-backend/internal/http/response"
	"github.com/yungbote/aspirepath-backend/internal/modules/roadmap"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
	"github.com/yungbote/aspirepath-backend/internal/services"
)

const msgInputRequired = "Profile and goals are required"

type RoadmapHandler struct {
	log            *logger.Logger
	roadmapService services.RoadmapService
}

func NewRoadmapHandler(log *logger.Logger, roadmapService services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{log: log.With("handler", "RoadmapHandler"), roadmapService: roadmapService}
}

// POST /api/generate-roadmap
// body: { "profile": {...}, "goals": [...] }
func (rh *RoadmapHandler) Generate(c *gin.Context) {
	var req struct {
		Profile *domain.UserProfile `json:"profile"`
		Goals   []domain.Goal       `json:"goals"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_input", msgInputRequired, err)
		return
	}
	rm, err := rh.roadmapService.Generate(c.Request.Context(), req.Profile, req.Goals)
	switch {
	case err == nil:
	case errors.Is(err, roadmap.ErrInvalidInput):
		response.RespondError(c, http.StatusBadRequest, "invalid_input", msgInputRequired, err)
		return
	case errors.Is(err, roadmap.ErrProvider):
		response.RespondError(c, http.StatusInternalServerError, "provider_error", "Failed to generate roadmap", err)
		return
	default:
		response.RespondAPIError(c, "Failed to generate roadmap", err)
		return
	}
	response.RespondOK(c, gin.H{
		"roadmap": rm,
		"message": "Roadmap generated successfully",
	})
}

// GET /api/roadmaps/:id
func (rh *RoadmapHandler) Get(c *gin.Context) {
	rm, err := rh.roadmapService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondAPIError(c, "Failed to get roadmap", err)
		return
	}
	response.RespondOK(c, gin.H{"roadmap": rm})
}

// PATCH /api/roadmaps/:id/steps/:stepId
// body: { "isCompleted": true }
func (rh *RoadmapHandler) UpdateStep(c *gin.Context) {
	var req struct {
		IsCompleted *bool `json:"isCompleted"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IsCompleted == nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", "isCompleted is required", err)
		return
	}
	rm, err := rh.roadmapService.SetStepCompleted(c.Request.Context(), c.Param("id"), c.Param("stepId"), *req.IsCompleted)
	if err != nil {
		response.RespondAPIError(c, "Failed to update step", err)
		return
	}
	response.RespondOK(c, gin.H{"roadmap": rm})
}
