package routes

import (
	"github.com/gin-gonic/gin"

	"voice_assistant/internal/handlers"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, commandHandler *handlers.CommandHandler) {
	r.GET("/health", handlers.Health)

	// 注册命令API路由
	RegisterAPIRoutes(r, commandHandler)

	// 注册WebSocket路由
	RegisterWSRoutes(r, handlers.NewWSHandler(commandHandler))
}
