package asr

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// WhisperConfig OpenAI 兼容的转写服务配置
type WhisperConfig struct {
	APIKey    string        // API密钥
	ServerURL string        // 服务器地址，为空时使用OpenAI官方地址
	Model     string        // 模型名称
	Language  string        // 识别语言，如 en-US
	Timeout   time.Duration // 请求超时
}

// WhisperClient 通过 OpenAI 转写接口识别WAV文件
type WhisperClient struct {
	client   *openai.Client
	model    string
	language string
}

// NewWhisperClient 创建新的 Whisper 客户端
func NewWhisperClient(config WhisperConfig) *WhisperClient {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.ServerURL != "" {
		clientConfig.BaseURL = config.ServerURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: config.Timeout}

	model := config.Model
	if model == "" {
		model = openai.Whisper1
	}

	return &WhisperClient{
		client:   openai.NewClientWithConfig(clientConfig),
		model:    model,
		language: isoLanguage(config.Language),
	}
}

// RecognizeFile 识别WAV文件
func (c *WhisperClient) RecognizeFile(ctx context.Context, path string) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.model,
		FilePath: path,
		Language: c.language,
	})
	if err != nil {
		return "", fmt.Errorf("whisper转写失败: %w", err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return "", ErrNoResult
	}
	return resp.Text, nil
}

// isoLanguage 将 en-US 形式转换为 whisper 使用的 en
func isoLanguage(language string) string {
	if i := strings.IndexByte(language, '-'); i > 0 {
		return strings.ToLower(language[:i])
	}
	return strings.ToLower(language)
}
