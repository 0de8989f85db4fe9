package routes

import (
	"github.com/gin-gonic/gin"

	"voice_assistant/internal/handlers"
)

// RegisterAPIRoutes 注册文本和音频命令路由
func RegisterAPIRoutes(r *gin.Engine, commandHandler *handlers.CommandHandler) {
	api := r.Group("/api")
	api.POST("/process-text", commandHandler.ProcessText)
	api.POST("/process-audio", commandHandler.ProcessAudio)
}
