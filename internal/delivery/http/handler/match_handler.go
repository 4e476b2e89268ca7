package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/usecase/match"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

// GetRoommateMatches handles GET /matches/roommate-matches/:userId
// @Summary Pending matches for a roommate profile
// @Description Lists scored resident candidates, generating them on first access
// @Tags matches
// @Produce json
// @Param userId path string true "user id, email or external uid"
// @Success 200 {object} match.ListResult
// @Failure 404 {object} ErrorResponse
// @Router /matches/roommate-matches/{userId} [get]
func (h *MatchHandler) GetRoommateMatches(c *gin.Context) {
	result, err := h.matchUseCase.RoommateMatches(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"success": true, "matches": result.Matches}
	if result.Message != "" {
		resp["message"] = result.Message
	}
	c.JSON(http.StatusOK, resp)
}

// GetResidentMatches handles GET /matches/resident-matches/:userId
func (h *MatchHandler) GetResidentMatches(c *gin.Context) {
	result, err := h.matchUseCase.ResidentMatches(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"success": true, "matches": result.Matches}
	if result.Message != "" {
		resp["message"] = result.Message
	}
	c.JSON(http.StatusOK, resp)
}

// GetMutualMatches handles GET /matches/mutual-matches/:userId
func (h *MatchHandler) GetMutualMatches(c *gin.Context) {
	views, err := h.matchUseCase.MutualMatches(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "matches": views})
}

type matchActionRequest struct {
	UserID  FlexID `json:"userId" binding:"required"`
	MatchID int    `json:"matchId" binding:"required"`
	Action  string `json:"action" binding:"required"`
}

// Action handles POST /matches/action
// @Summary Accept or reject a pending match
// @Tags matches
// @Accept json
// @Produce json
// @Param request body matchActionRequest true "action payload"
// @Success 200 {object} match.ActionResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/action [post]
func (h *MatchHandler) Action(c *gin.Context) {
	var req matchActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing userId, matchId, or action")
		return
	}

	userID, err := strconv.Atoi(strings.TrimSpace(req.UserID.String()))
	if err != nil {
		badRequest(c, "userId and matchId must be numeric")
		return
	}

	result, err := h.matchUseCase.Action(c.Request.Context(), userID, req.MatchID, req.Action)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": result.Message,
		"isMatch": result.IsMatch,
		"matchId": result.MatchID,
	})
}

// ListAll handles GET /matches/ (admin only)
func (h *MatchHandler) ListAll(c *gin.Context) {
	matches, err := h.matchUseCase.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(matches), "matches": matches})
}
