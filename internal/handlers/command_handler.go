package handlers

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"voice_assistant/internal/models"
)

// TranscriptionFailedError 转写失败时返回的错误信息
const TranscriptionFailedError = "Could not transcribe audio"

// CommandHandler 文本和音频命令处理器
type CommandHandler struct {
	interpreter models.CommandInterpreter
	transcriber models.Transcriber
	speaker     models.Speaker
}

// NewCommandHandler 创建新的命令处理器，speaker 可以为 nil
func NewCommandHandler(interpreter models.CommandInterpreter, transcriber models.Transcriber, speaker models.Speaker) *CommandHandler {
	return &CommandHandler{
		interpreter: interpreter,
		transcriber: transcriber,
		speaker:     speaker,
	}
}

// ProcessText 处理文本命令
//
// 请求体无法解析时按空命令处理，状态码始终为200。
func (h *CommandHandler) ProcessText(c *gin.Context) {
	var req models.TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[WARN] 解析文本命令请求失败: %v", err)
	}

	c.JSON(http.StatusOK, h.handleText(req.Command))
}

// ProcessAudio 处理base64编码的音频命令
func (h *CommandHandler) ProcessAudio(c *gin.Context) {
	var req models.AudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[ERROR] 解析音频命令请求失败: %v", err)
		c.JSON(http.StatusOK, models.Response{Success: false, Error: err.Error()})
		return
	}

	audioData, err := base64.StdEncoding.DecodeString(req.Audio)
	if err != nil {
		log.Printf("[ERROR] 解码音频数据失败: %v", err)
		c.JSON(http.StatusOK, models.Response{
			Success: false,
			Error:   fmt.Sprintf("invalid base64 audio: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, h.handleAudio(c.Request.Context(), audioData))
}

// handleText 解释文本命令
func (h *CommandHandler) handleText(command string) models.Response {
	response := h.interpreter.Interpret(command)
	h.speak(response)
	return models.Response{
		Success:  true,
		Response: response,
	}
}

// handleAudio 转写音频后解释命令
func (h *CommandHandler) handleAudio(ctx context.Context, audioData []byte) models.Response {
	command, ok := h.transcriber.Transcribe(ctx, audioData)
	if !ok {
		return models.Response{
			Success: false,
			Error:   TranscriptionFailedError,
		}
	}

	response := h.interpreter.Interpret(command)
	h.speak(response)
	return models.Response{
		Success:  true,
		Command:  command,
		Response: response,
	}
}

// speak 异步朗读回复
func (h *CommandHandler) speak(text string) {
	if h.speaker == nil {
		return
	}
	go func() {
		if err := h.speaker.Speak(text); err != nil {
			log.Printf("[WARN] 朗读回复失败: %v", err)
		}
	}()
}
