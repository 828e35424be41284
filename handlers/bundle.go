package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Conversation endpoints
	PostMessageHandler gin.HandlerFunc
	PostOptionHandler  gin.HandlerFunc

	// History endpoints
	GetHistoryHandler   gin.HandlerFunc
	ClearHistoryHandler gin.HandlerFunc
}
