package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/usecase/chat"
)

type ChatHandler struct {
	chatUseCase *chat.ChatUseCase
}

func NewChatHandler(chatUseCase *chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type getOrCreateRoomRequest struct {
	UserID FlexID `json:"userId" binding:"required"`
	// Either field names the counterpart; otherIdentifier is the older
	// client spelling.
	OtherUserID     FlexID `json:"otherUserId"`
	OtherIdentifier FlexID `json:"otherIdentifier"`
}

// GetOrCreateRoom handles POST /chat/rooms/get-or-create
// @Summary Get or create the chat room between two users
// @Tags chat
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse
// @Router /chat/rooms/get-or-create [post]
func (h *ChatHandler) GetOrCreateRoom(c *gin.Context) {
	var req getOrCreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "userId and otherUserId/otherIdentifier required")
		return
	}

	other := req.OtherUserID.String()
	if other == "" {
		other = req.OtherIdentifier.String()
	}
	if other == "" {
		badRequest(c, "userId and otherUserId/otherIdentifier required")
		return
	}

	room, err := h.chatUseCase.GetOrCreateRoom(c.Request.Context(), req.UserID.String(), other)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "chatRoomId": room.ID})
}

// GetRooms handles GET /chat/rooms/:userId
func (h *ChatHandler) GetRooms(c *gin.Context) {
	rooms, err := h.chatUseCase.RoomsForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "rooms": rooms})
}

// GetMessages handles GET /chat/messages/:roomId?userId=N
func (h *ChatHandler) GetMessages(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("roomId"))
	userID, err2 := strconv.Atoi(c.Query("userId"))
	if err != nil || err2 != nil {
		badRequest(c, "roomId and userId must be numeric")
		return
	}

	messages, err := h.chatUseCase.Messages(c.Request.Context(), roomID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
}

type sendMessageRequest struct {
	RoomID      int    `json:"roomId" binding:"required"`
	UserID      FlexID `json:"userId" binding:"required"`
	MessageText string `json:"messageText" binding:"required"`
}

// SendMessage handles POST /chat/messages
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing roomId, userId, or messageText")
		return
	}

	senderID, err := strconv.Atoi(req.UserID.String())
	if err != nil {
		badRequest(c, "roomId and userId must be numeric")
		return
	}

	message, err := h.chatUseCase.Send(c.Request.Context(), req.RoomID, senderID, req.MessageText)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}
