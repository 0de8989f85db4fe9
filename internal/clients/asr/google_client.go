// Package asr 提供外部语音识别服务客户端
package asr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const defaultGoogleURL = "https://speech.googleapis.com"

// ErrNoResult 识别服务未返回任何结果
var ErrNoResult = errors.New("语音识别未返回结果")

// GoogleConfig Google Speech-to-Text 客户端配置
type GoogleConfig struct {
	APIKey     string        // API密钥
	ServerURL  string        // 服务器地址，为空时使用官方地址
	Language   string        // 识别语言
	SampleRate int           // 采样率
	Timeout    time.Duration // 请求超时
}

// GoogleClient Google Speech-to-Text v1 REST 客户端
type GoogleClient struct {
	config GoogleConfig
	client *http.Client
}

// RecognizeRequest 识别请求
type RecognizeRequest struct {
	Config RecognitionConfig `json:"config"`
	Audio  RecognitionAudio  `json:"audio"`
}

// RecognitionConfig 识别参数
type RecognitionConfig struct {
	Encoding        string `json:"encoding"`
	SampleRateHertz int    `json:"sampleRateHertz"`
	LanguageCode    string `json:"languageCode"`
}

// RecognitionAudio 音频内容，Content 为 base64 编码的WAV
type RecognitionAudio struct {
	Content string `json:"content"`
}

// RecognizeResponse 识别响应
type RecognizeResponse struct {
	Results []struct {
		Alternatives []struct {
			Transcript string  `json:"transcript"`
			Confidence float64 `json:"confidence"`
		} `json:"alternatives"`
	} `json:"results"`
}

// NewGoogleClient 创建新的Google语音识别客户端
func NewGoogleClient(config GoogleConfig) *GoogleClient {
	if config.ServerURL == "" {
		config.ServerURL = defaultGoogleURL
	}
	return &GoogleClient{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// RecognizeFile 识别WAV文件
func (c *GoogleClient) RecognizeFile(ctx context.Context, path string) (string, error) {
	audioData, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("读取音频文件失败: %w", err)
	}

	reqBody := RecognizeRequest{
		Config: RecognitionConfig{
			Encoding:        "LINEAR16",
			SampleRateHertz: c.config.SampleRate,
			LanguageCode:    c.config.Language,
		},
		Audio: RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(audioData),
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("序列化请求失败: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/speech:recognize?key=%s", c.config.ServerURL, url.QueryEscape(c.config.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("发送请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("服务器返回错误 %d: %s", resp.StatusCode, string(body))
	}

	var response RecognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("解析响应失败: %w", err)
	}

	for _, result := range response.Results {
		if len(result.Alternatives) > 0 {
			return result.Alternatives[0].Transcript, nil
		}
	}
	return "", ErrNoResult
}
