// Package browser 在本机浏览器中打开网页
package browser

import (
	"log"
	"os/exec"
	"runtime"
)

// Launcher 调用系统命令打开网页，不等待命令结束
type Launcher struct {
	enabled bool
	command func(url string) *exec.Cmd
}

// NewLauncher 创建新的浏览器启动器，enabled 为 false 时只记录日志
func NewLauncher(enabled bool) *Launcher {
	return &Launcher{
		enabled: enabled,
		command: openCommand(runtime.GOOS),
	}
}

// openCommand 返回各平台打开网页的命令
func openCommand(goos string) func(url string) *exec.Cmd {
	switch goos {
	case "darwin":
		return func(url string) *exec.Cmd { return exec.Command("open", url) }
	case "windows":
		return func(url string) *exec.Cmd { return exec.Command("cmd", "/c", "start", url) }
	default:
		return func(url string) *exec.Cmd { return exec.Command("xdg-open", url) }
	}
}

// Open 打开网页，错误只记录日志
func (l *Launcher) Open(url string) {
	if !l.enabled {
		log.Printf("[INFO] 浏览器已禁用，跳过打开: %s", url)
		return
	}

	cmd := l.command(url)
	if err := cmd.Start(); err != nil {
		log.Printf("[ERROR] 打开浏览器失败: %s, %v", url, err)
		return
	}
	log.Printf("[INFO] 正在打开: %s", url)

	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("[WARN] 浏览器命令退出异常: %s, %v", url, err)
		}
	}()
}
