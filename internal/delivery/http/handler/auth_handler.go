package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/usecase/auth"
)

type AuthHandler struct {
	authUseCase *auth.AdminAuthUseCase
}

func NewAuthHandler(authUseCase *auth.AdminAuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type adminTokenRequest struct {
	Secret string `json:"secret" binding:"required"`
}

// AdminToken handles POST /auth/admin-token
// @Summary Exchange the shared admin secret for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Router /auth/admin-token [post]
func (h *AuthHandler) AdminToken(c *gin.Context) {
	var req adminTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing secret")
		return
	}

	token, err := h.authUseCase.IssueToken(req.Secret)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
