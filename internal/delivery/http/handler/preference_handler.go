package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/usecase/preference"
)

type PreferenceHandler struct {
	preferenceUseCase *preference.PreferenceUseCase
}

func NewPreferenceHandler(preferenceUseCase *preference.PreferenceUseCase) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUseCase: preferenceUseCase,
	}
}

type saveRoommateRequest struct {
	UserID      FlexID                                 `json:"userId" binding:"required"`
	Preferences *preference.RoommatePreferencesRequest `json:"preferences" binding:"required"`
}

type saveResidentRequest struct {
	UserID      FlexID                                 `json:"userId" binding:"required"`
	Preferences *preference.ResidentPreferencesRequest `json:"preferences" binding:"required"`
}

// SaveRoommatePreferences handles POST /preferences/save-roommate-preferences
// @Summary Save seeker-side survey answers
// @Tags preferences
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /preferences/save-roommate-preferences [post]
func (h *PreferenceHandler) SaveRoommatePreferences(c *gin.Context) {
	var req saveRoommateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing userId or preferences")
		return
	}

	userID, err := h.preferenceUseCase.SaveRoommate(c.Request.Context(), req.UserID.String(), req.Preferences)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "userId": userID})
}

// SaveResidentPreferences handles POST /preferences/save-resident-preferences
func (h *PreferenceHandler) SaveResidentPreferences(c *gin.Context) {
	var req saveResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing userId or preferences")
		return
	}

	userID, err := h.preferenceUseCase.SaveResident(c.Request.Context(), req.UserID.String(), req.Preferences)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "userId": userID})
}

// GetRoommatePreferences handles GET /preferences/get-roommate-preferences/:identifier
func (h *PreferenceHandler) GetRoommatePreferences(c *gin.Context) {
	prefs, err := h.preferenceUseCase.GetRoommate(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "preferences": prefs})
}

// GetResidentPreferences handles GET /preferences/get-resident-preferences/:identifier
func (h *PreferenceHandler) GetResidentPreferences(c *gin.Context) {
	prefs, err := h.preferenceUseCase.GetResident(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "preferences": prefs})
}
