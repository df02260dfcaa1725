package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/janhq/chat-server/internal/interfaces/httpserver/handlers"
)

func registerChannelRoutes(router gin.IRoutes, handler *handlers.ChannelHandler, messages *handlers.MessageHandler) {
	router.POST("/channels", handler.Create)
	router.GET("/channels", handler.List)
	router.GET("/channels/:channel_id", handler.Get)
	router.GET("/channels/:channel_id/messages", messages.ListForChannel)
}
