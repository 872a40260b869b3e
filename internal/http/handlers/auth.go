package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/aspirepath-backend/internal/domain"
	"github.com/yungbote/aspirepath-backend/internal/http/response"
	"github.com/yungbote/aspirepath-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type userView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// POST /api/auth/signup
func (ah *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Email    string              `json:"email"`
		Password string              `json:"password"`
		Profile  *domain.UserProfile `json:"profile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", "Email and password are required", err)
		return
	}
	user, token, err := ah.authService.Signup(c.Request.Context(), services.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Profile:  req.Profile,
	})
	if err != nil {
		response.RespondAPIError(c, "Failed to create account", err)
		return
	}
	response.RespondOK(c, gin.H{
		"message":    "Account created successfully",
		"user":       userView{ID: user.ID, Email: user.Email},
		"token":      token,
		"expires_in": int(ah.authService.GetAccessTTL().Seconds()),
	})
}

// POST /api/auth/signin
func (ah *AuthHandler) Signin(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", "Email and password are required", err)
		return
	}
	user, token, err := ah.authService.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RespondAPIError(c, "Failed to sign in", err)
		return
	}
	response.RespondOK(c, gin.H{
		"message":    "Signed in successfully",
		"user":       userView{ID: user.ID, Email: user.Email},
		"token":      token,
		"expires_in": int(ah.authService.GetAccessTTL().Seconds()),
	})
}

// POST /api/auth/signout. Tokens are stateless; the client drops its copy.
func (ah *AuthHandler) Signout(c *gin.Context) {
	response.RespondOK(c, gin.H{"message": "Signed out successfully"})
}
