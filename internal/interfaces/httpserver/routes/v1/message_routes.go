package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/janhq/chat-server/internal/interfaces/httpserver/handlers"
)

func registerMessageRoutes(router gin.IRoutes, handler *handlers.MessageHandler) {
	router.POST("/messages", handler.Send)
}
