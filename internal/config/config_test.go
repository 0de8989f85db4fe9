package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ASR_API_KEY", "env-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, ProviderGoogle, cfg.ASR.Provider)
	assert.Equal(t, "env-key", cfg.ASR.APIKey)
	assert.Equal(t, 16000, cfg.ASR.SampleRate)
	assert.Equal(t, "en-US", cfg.ASR.Language)
	assert.Equal(t, "https://www.google.com", cfg.Browser.Sites.Google)
	assert.True(t, cfg.Browser.IsEnabled())
	assert.False(t, cfg.TTS.Enabled)
}

func TestLoad_FileWithEnvExpansion(t *testing.T) {
	t.Setenv("TEST_WHISPER_KEY", "sk-test")

	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 8081
  mode: debug
asr:
  provider: whisper
  api_key: ${TEST_WHISPER_KEY}
  timeout: 5s
browser:
  enabled: false
  sites:
    google: https://google.example
tts:
  enabled: true
  voice: en
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.Addr())
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, ProviderWhisper, cfg.ASR.Provider)
	assert.Equal(t, "sk-test", cfg.ASR.APIKey)
	assert.Equal(t, 5*time.Second, cfg.ASR.Timeout)
	assert.False(t, cfg.Browser.IsEnabled())
	assert.Equal(t, "https://google.example", cfg.Browser.Sites.Google)
	assert.Equal(t, "https://chatgpt.com", cfg.Browser.Sites.ChatGPT)
	assert.True(t, cfg.TTS.Enabled)
	assert.Equal(t, "en", cfg.TTS.Voice)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("ASR_API_KEY", "")

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "缺少API密钥",
			content: "server:\n  port: 5000\n",
			wantErr: ErrEmptyAPIKey,
		},
		{
			name:    "未知识别服务",
			content: "asr:\n  provider: sphinx\n  api_key: k\n",
			wantErr: ErrUnknownProvider,
		},
		{
			name:    "讯飞缺少AppID",
			content: "asr:\n  provider: xfyun\n  api_key: k\n  api_secret: s\n",
			wantErr: ErrEmptyAppID,
		},
		{
			name:    "讯飞缺少APISecret",
			content: "asr:\n  provider: xfyun\n  api_key: k\n  app_id: a\n",
			wantErr: ErrEmptyAPISecret,
		},
		{
			name:    "端口越界",
			content: "server:\n  port: 70000\nasr:\n  api_key: k\n",
			wantErr: ErrInvalidPort,
		},
		{
			name:    "未知运行模式",
			content: "server:\n  mode: fast\nasr:\n  api_key: k\n",
			wantErr: ErrInvalidMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [unclosed"))
	assert.Error(t, err)
}
