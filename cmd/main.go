package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"voice_assistant/internal/clients/asr"
	"voice_assistant/internal/clients/browser"
	"voice_assistant/internal/clients/tts"
	"voice_assistant/internal/config"
	"voice_assistant/internal/handlers"
	"voice_assistant/internal/models"
	"voice_assistant/internal/servers"
	"voice_assistant/internal/services"
)

const version = "0.1.0"

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd 创建命令行入口
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "voice-assistant",
		Short:         "语音助手HTTP服务",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "配置文件路径")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "启动HTTP服务",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configPath)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "显示版本",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "voice-assistant", version)
		},
	})

	return root
}

// serve 加载配置、组装依赖并运行服务器直到收到退出信号
func serve(configPath string) error {
	log.Println("[INFO] 语音助手启动中...")

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("[ERROR] 加载配置失败: %v", err)
		return err
	}

	recognizer, err := asr.NewRecognizer(cfg.ASR)
	if err != nil {
		log.Printf("[ERROR] 创建语音识别客户端失败: %v", err)
		return err
	}

	var speaker models.Speaker
	if cfg.TTS.Enabled {
		speaker = tts.NewSpeaker(tts.Config{Binary: cfg.TTS.Binary, Voice: cfg.TTS.Voice})
	}

	commandService := services.NewCommandService(browser.NewLauncher(cfg.Browser.IsEnabled()), cfg.Browser.Sites)
	transcriptionService := services.NewTranscriptionService(recognizer, cfg.ASR.SampleRate, cfg.ASR.TempDir)
	commandHandler := handlers.NewCommandHandler(commandService, transcriptionService, speaker)

	server := servers.NewHTTPServer(cfg.Server, servers.NewEngine(cfg.Server.Mode, commandHandler))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Printf("[INFO] 收到信号 %s，准备退出", sig)
	}

	return server.Stop()
}
