package asr

import (
	"time"

	"voice_assistant/internal/config"
	"voice_assistant/internal/models"
)

// NewRecognizer 根据配置创建语音识别客户端
func NewRecognizer(cfg config.ASRConfig) (models.SpeechRecognizer, error) {
	switch cfg.Provider {
	case config.ProviderGoogle:
		return NewGoogleClient(GoogleConfig{
			APIKey:     cfg.APIKey,
			ServerURL:  cfg.ServerURL,
			Language:   cfg.Language,
			SampleRate: cfg.SampleRate,
			Timeout:    cfg.Timeout,
		}), nil
	case config.ProviderWhisper:
		return NewWhisperClient(WhisperConfig{
			APIKey:    cfg.APIKey,
			ServerURL: cfg.ServerURL,
			Model:     cfg.Model,
			Language:  cfg.Language,
			Timeout:   cfg.Timeout,
		}), nil
	case config.ProviderXFYun:
		return NewXFYunClient(XFYunConfig{
			AppID:         cfg.AppID,
			APIKey:        cfg.APIKey,
			APISecret:     cfg.APISecret,
			ServerURL:     cfg.ServerURL,
			Language:      cfg.Language,
			SampleRate:    cfg.SampleRate,
			FrameInterval: 40 * time.Millisecond,
			Timeout:       cfg.Timeout,
		}), nil
	default:
		return nil, config.ErrUnknownProvider
	}
}
