package config

import (
	"os"
	"time"
)

// 支持的语音识别服务
const (
	ProviderGoogle  = "google"
	ProviderWhisper = "whisper"
	ProviderXFYun   = "xfyun"
)

// ASRConfig 语音识别配置
type ASRConfig struct {
	Provider   string        `yaml:"provider"`    // google、whisper 或 xfyun
	APIKey     string        `yaml:"api_key"`     // API密钥
	AppID      string        `yaml:"app_id"`      // 讯飞应用ID
	APISecret  string        `yaml:"api_secret"`  // 讯飞API密钥
	ServerURL  string        `yaml:"server_url"`  // 服务器地址，为空时使用官方地址
	Language   string        `yaml:"language"`    // 识别语言，如 en-US
	Model      string        `yaml:"model"`       // whisper 模型名称
	SampleRate int           `yaml:"sample_rate"` // 采样率
	Timeout    time.Duration `yaml:"timeout"`     // 单次识别超时
	TempDir    string        `yaml:"temp_dir"`    // 临时WAV文件目录
}

func (c *ASRConfig) setDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderGoogle
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("ASR_API_KEY")
	}
	if c.Language == "" {
		c.Language = "en-US"
	}
	if c.Model == "" {
		c.Model = "whisper-1"
	}
	if c.SampleRate <= 0 {
		c.SampleRate = 16000 // 默认16kHz
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.TempDir == "" {
		c.TempDir = os.TempDir()
	}
}

// Validate 验证ASR配置
func (c *ASRConfig) Validate() error {
	switch c.Provider {
	case ProviderGoogle, ProviderWhisper:
	case ProviderXFYun:
		if c.AppID == "" {
			return ErrEmptyAppID
		}
		if c.APISecret == "" {
			return ErrEmptyAPISecret
		}
	default:
		return ErrUnknownProvider
	}
	if c.APIKey == "" {
		return ErrEmptyAPIKey
	}
	if c.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	return nil
}
