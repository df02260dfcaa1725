package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/janhq/chat-server/internal/interfaces/httpserver/handlers"
)

func registerContactRoutes(router gin.IRoutes, handler *handlers.ContactHandler, channels *handlers.ChannelHandler) {
	router.POST("/contacts", handler.Create)
	router.GET("/contacts", handler.List)
	router.GET("/contacts/:contact_id", handler.Get)
	router.PATCH("/contacts/:contact_id", handler.Update)
	router.DELETE("/contacts/:contact_id", handler.Delete)
	router.GET("/contacts/:contact_id/channels", channels.ListForContact)
}
