// Package config 提供配置加载和管理功能
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 应用程序配置结构
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	ASR     ASRConfig     `yaml:"asr"`
	Browser BrowserConfig `yaml:"browser"`
	TTS     TTSConfig     `yaml:"tts"`
}

// ServerConfig HTTP服务器配置
type ServerConfig struct {
	Host            string        `yaml:"host"`             // 服务器监听地址
	Port            int           `yaml:"port"`             // 服务器监听端口
	Mode            string        `yaml:"mode"`             // gin运行模式: debug/release/test
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // 优雅关闭超时
}

// TTSConfig 语音合成配置
type TTSConfig struct {
	Enabled bool   `yaml:"enabled"` // 是否朗读回复
	Binary  string `yaml:"binary"`  // 合成程序，为空时按平台选择
	Voice   string `yaml:"voice"`   // 声音名称
}

// Addr 返回监听地址
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Default 返回带默认值的配置
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load 从文件加载配置
//
// 先加载当前目录下的 .env，配置文件中的 ${VAR} 会被环境变量替换。
// 配置文件不存在时使用默认配置。
func Load(filename string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("加载.env文件失败: %w", err)
	}

	var cfg Config
	data, err := os.ReadFile(filename)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// 使用默认配置
	case err != nil:
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	default:
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
			return nil, fmt.Errorf("解析配置文件失败: %w", err)
		}
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("配置验证失败: %w", err)
	}

	return &cfg, nil
}

// setDefaults 设置默认值
func (c *Config) setDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "release"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}

	c.ASR.setDefaults()
	c.Browser.setDefaults()
}

// Validate 验证配置是否有效
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return ErrInvalidPort
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: %s", ErrInvalidMode, c.Server.Mode)
	}

	if err := c.ASR.Validate(); err != nil {
		return err
	}
	return c.Browser.Validate()
}
