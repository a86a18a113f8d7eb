package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/boska/laundry-dash-api/models"
	"github.com/boska/laundry-dash-api/services"
	"github.com/boska/laundry-dash-api/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatController exposes the support chatroom
type ChatController struct {
	chat *store.ChatStore
	svc  *services.ChatService
}

// NewChatController creates a chat controller
func NewChatController(chat *store.ChatStore, svc *services.ChatService) *ChatController {
	return &ChatController{chat: chat, svc: svc}
}

// SendMessageRequest represents the request body for sending a message
type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// SetInputRequest represents the request body for the pending input
// field
type SetInputRequest struct {
	Text string `json:"text"`
}

// ListMessages handles GET /api/v1/chatroom/messages
func (ctl *ChatController) ListMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"messages":   ctl.chat.Messages(),
			"input_text": ctl.chat.InputText(),
		},
	})
}

// SendMessage handles POST /api/v1/chatroom/messages. Every message is
// authored by the user side; the auto-responder appends its reply after
// a short delay. The /clean command clears the log instead.
func (ctl *ChatController) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	msg := models.Message{
		ID:        uuid.New().String(),
		Text:      req.Text,
		Sender:    models.SenderUser,
		Timestamp: time.Now().UnixMilli(),
		Type:      models.MessageText,
	}

	cleared := strings.TrimSpace(req.Text) == services.ClearCommand
	ctl.svc.HandleMessage(msg)

	if cleared {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"cleared":  true,
				"messages": ctl.chat.Messages(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    msg,
	})
}

// ClearMessages handles DELETE /api/v1/chatroom/messages
func (ctl *ChatController) ClearMessages(c *gin.Context) {
	ctl.chat.ClearMessages()
	ctl.chat.ClearInputText()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    nil,
	})
}

// SetInput handles PUT /api/v1/chatroom/input - mirrors the pending
// input field so a reconnecting client can restore it
func (ctl *ChatController) SetInput(c *gin.Context) {
	var req SetInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	ctl.chat.SetInputText(req.Text)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"input_text": ctl.chat.InputText(),
		},
	})
}
