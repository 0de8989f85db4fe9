// Package tts 调用本机语音合成程序朗读文本
package tts

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"sync"
	"time"
)

// Config 语音合成配置
type Config struct {
	Binary  string        // 合成程序，为空时 darwin 使用 say，其余使用 espeak
	Voice   string        // 声音名称
	Timeout time.Duration // 单次朗读超时
}

// Speaker 本机语音合成，同一时间只朗读一段文本
type Speaker struct {
	binary  string
	voice   string
	timeout time.Duration
	mu      sync.Mutex
}

// NewSpeaker 创建新的语音合成器
func NewSpeaker(cfg Config) *Speaker {
	binary := cfg.Binary
	if binary == "" {
		binary = defaultBinary(runtime.GOOS)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Speaker{
		binary:  binary,
		voice:   cfg.Voice,
		timeout: timeout,
	}
}

func defaultBinary(goos string) string {
	if goos == "darwin" {
		return "say"
	}
	return "espeak"
}

// args 构造命令参数，say 和 espeak 都使用 -v 指定声音
func (s *Speaker) args(text string) []string {
	if s.voice == "" {
		return []string{text}
	}
	return []string{"-v", s.voice, text}
}

// Speak 朗读文本并等待结束
func (s *Speaker) Speak(text string) error {
	if text == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, s.binary, s.args(text)...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("语音合成失败: %w, 输出: %s", err, string(out))
	}
	return nil
}
