package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/aspirepath-backend/internal/domain"
	"github.com/yungbote/aspirepath-backend/internal/http/response"
	"github.com/yungbote/aspirepath-backend/internal/services"
)

type UserHandler struct {
	profileService services.ProfileService
	roadmapService services.RoadmapService
}

func NewUserHandler(profileService services.ProfileService, roadmapService services.RoadmapService) *UserHandler {
	return &UserHandler{profileService: profileService, roadmapService: roadmapService}
}

// GET /api/user/profile
func (uh *UserHandler) GetProfile(c *gin.Context) {
	p, err := uh.profileService.Get(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, "Failed to get profile", err)
		return
	}
	response.RespondOK(c, gin.H{"profile": p})
}

// PUT /api/user/profile
// body: { "profile": { ... } }
func (uh *UserHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		Profile *domain.UserProfile `json:"profile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Profile == nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", "Profile data is required", err)
		return
	}
	p, err := uh.profileService.Update(c.Request.Context(), req.Profile)
	if err != nil {
		response.RespondAPIError(c, "Failed to update profile", err)
		return
	}
	response.RespondOK(c, gin.H{"message": "Profile updated successfully", "profile": p})
}

// GET /api/user/roadmaps
func (uh *UserHandler) ListRoadmaps(c *gin.Context) {
	list, err := uh.roadmapService.List(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, "Failed to get roadmaps", err)
		return
	}
	response.RespondOK(c, gin.H{"roadmaps": list})
}

// GET /api/user/roadmaps/latest
func (uh *UserHandler) LatestRoadmap(c *gin.Context) {
	rm, err := uh.roadmapService.Latest(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, "Failed to get roadmap", err)
		return
	}
	response.RespondOK(c, gin.H{"roadmap": rm})
}
