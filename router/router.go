package router

import (
	"github.com/gin-gonic/gin"

	"lawchat-backend/controller"
	"lawchat-backend/middleware"
)

func Register(ctrl *controller.Controller, allowedOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORSMiddleware(allowedOrigins))

	r.GET("/health", ctrl.Health)
	r.GET("/api", ctrl.APIIndex)

	api := r.Group("/api")
	{
		api.GET("/sessions", ctrl.GetSessions)
		api.POST("/sessions", ctrl.CreateSession)
		api.GET("/sessions/:id", ctrl.GetSession)
		api.PUT("/sessions/:id", ctrl.UpdateSession)
		api.DELETE("/sessions/:id", ctrl.DeleteSession)
		api.GET("/sessions/:id/messages", ctrl.GetSessionMessages)

		api.GET("/messages", ctrl.GetMessages)
		api.POST("/messages", ctrl.CreateMessage)
		api.DELETE("/messages/:id", ctrl.DeleteMessage)

		api.POST("/chat", ctrl.Chat)
		api.POST("/chat/test", ctrl.TestChatConnection)
	}

	r.NoRoute(ctrl.NotFound)

	return r
}
