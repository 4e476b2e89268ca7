package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/usecase/debug"
)

type DebugHandler struct {
	debugUseCase *debug.DebugUseCase
}

func NewDebugHandler(debugUseCase *debug.DebugUseCase) *DebugHandler {
	return &DebugHandler{
		debugUseCase: debugUseCase,
	}
}

// SchemaHealth handles GET /debug/schema-health
func (h *DebugHandler) SchemaHealth(c *gin.Context) {
	report, err := h.debugUseCase.SchemaHealth(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "report": report})
}

// CreateUser handles POST /debug/create-user
func (h *DebugHandler) CreateUser(c *gin.Context) {
	var req debug.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid user payload")
		return
	}

	userID, err := h.debugUseCase.CreateUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user_id": userID})
}

// UserInfo handles GET /debug/user-info/:identifier
func (h *DebugHandler) UserInfo(c *gin.Context) {
	user, err := h.debugUseCase.UserInfo(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// ListUsers handles GET /debug/list-users?limit=N
func (h *DebugHandler) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	users, err := h.debugUseCase.ListUsers(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(users), "users": users})
}
