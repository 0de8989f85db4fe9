package servers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"voice_assistant/internal/config"
	"voice_assistant/internal/handlers"
	"voice_assistant/internal/middleware"
	"voice_assistant/internal/routes"
)

// HTTPServer HTTP服务器
type HTTPServer struct {
	server          *http.Server
	shutdownTimeout time.Duration
}

// NewEngine 创建注册好中间件和路由的 gin 引擎
func NewEngine(mode string, commandHandler *handlers.CommandHandler) *gin.Engine {
	gin.SetMode(mode)
	r := gin.New()
	middleware.Setup(r)
	routes.RegisterRoutes(r, commandHandler)
	return r
}

// NewHTTPServer 创建HTTP服务器
func NewHTTPServer(cfg config.ServerConfig, handler http.Handler) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Start 启动服务器，阻塞直到服务器关闭
func (s *HTTPServer) Start() error {
	log.Printf("[INFO] 正在启动HTTP服务器，监听地址: %s", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[ERROR] HTTP服务器错误: %v", err)
		return err
	}

	return nil
}

// Stop 停止服务器
func (s *HTTPServer) Stop() error {
	log.Printf("[INFO] 正在停止HTTP服务器")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		log.Printf("[WARN] 优雅关闭失败，强制关闭: %v", err)
		return s.server.Close()
	}
	return nil
}
