package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stayfinder/services/conversation"
	"stayfinder/utils"
)

// ConversationHandler exposes the conversation engine over HTTP. Each call
// feeds one user action to the engine and returns the bot replies the
// engine produced for it.
type ConversationHandler struct {
	Engine    conversation.Engine
	Collector *ReplyCollector
	Logger    *zap.Logger
}

// NewConversationHandler wires the handler with the engine and the reply
// collector acting as its prompter.
func NewConversationHandler(engine conversation.Engine, collector *ReplyCollector, logger *zap.Logger) *ConversationHandler {
	return &ConversationHandler{Engine: engine, Collector: collector, Logger: logger}
}

// PostMessageHandler routes a free-text user message.
func (h *ConversationHandler) PostMessageHandler(c *gin.Context) {
	chatID := c.Param("chatID")
	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Engine.HandleMessage(c.Request.Context(), chatID, input.Text); err != nil {
		h.Logger.Error("handle message failed", zap.String("chatId", chatID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to process message", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"replies": h.Collector.Drain(chatID)})
}

// PostOptionHandler routes a selected option.
func (h *ConversationHandler) PostOptionHandler(c *gin.Context) {
	chatID := c.Param("chatID")
	var input struct {
		OptionID string `json:"optionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Engine.HandleOption(c.Request.Context(), chatID, input.OptionID); err != nil {
		h.Logger.Error("handle option failed", zap.String("chatId", chatID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to process option", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"replies": h.Collector.Drain(chatID)})
}
