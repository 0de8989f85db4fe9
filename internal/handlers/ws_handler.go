package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"voice_assistant/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler WebSocket 命令处理器
//
// 文本帧为命令文本，二进制帧为原始PCM音频，每帧返回一个JSON结果。
type WSHandler struct {
	commands *CommandHandler
}

// NewWSHandler 创建新的 WebSocket 命令处理器
func NewWSHandler(commands *CommandHandler) *WSHandler {
	return &WSHandler{commands: commands}
}

// HandleWebSocket 处理 WebSocket 连接
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[ERROR] 升级 WebSocket 连接失败: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[INFO] WebSocket 客户端已连接: %s", conn.RemoteAddr())

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ERROR] 读取 WebSocket 消息错误: %v", err)
			}
			return
		}

		response, ok := h.handleMessage(c, messageType, message)
		if !ok {
			continue
		}
		if err := conn.WriteJSON(response); err != nil {
			log.Printf("[ERROR] 发送 WebSocket 响应失败: %v", err)
			return
		}
	}
}

// handleMessage 处理单条消息，不支持的消息类型返回 false
func (h *WSHandler) handleMessage(c *gin.Context, messageType int, message []byte) (models.Response, bool) {
	switch messageType {
	case websocket.TextMessage:
		return h.commands.handleText(string(message)), true
	case websocket.BinaryMessage:
		return h.commands.handleAudio(c.Request.Context(), message), true
	default:
		return models.Response{}, false
	}
}
