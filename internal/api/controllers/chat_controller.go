package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

func (cc *ChatController) PostMessageHandler(c *gin.Context) {
	var req request_models.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "message is required")
		return
	}

	sessionID := c.GetString("session_id")

	history, err := cc.chatService.PostMessage(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ChatHistoryResponse{History: history}, "Message posted")
}

func (cc *ChatController) GetHistoryHandler(c *gin.Context) {
	sessionID := c.GetString("session_id")
	history := cc.chatService.History(sessionID)
	utils.RespondSuccess(c, response_models.ChatHistoryResponse{History: history}, "")
}

func (cc *ChatController) ClearHistoryHandler(c *gin.Context) {
	sessionID := c.GetString("session_id")
	cc.chatService.Clear(sessionID)
	utils.RespondSuccess(c, response_models.ChatHistoryResponse{History: []response_models.ChatTurn{}}, "Chat history cleared")
}
