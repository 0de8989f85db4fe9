package routes

import (
	"github.com/gin-gonic/gin"

	"voice_assistant/internal/handlers"
)

// RegisterWSRoutes 注册WebSocket命令路由
func RegisterWSRoutes(r *gin.Engine, wsHandler *handlers.WSHandler) {
	r.GET("/ws/command", wsHandler.HandleWebSocket)
}
