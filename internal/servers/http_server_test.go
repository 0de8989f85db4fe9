package servers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice_assistant/internal/config"
	"voice_assistant/internal/handlers"
	"voice_assistant/internal/middleware"
)

type staticInterpreter string

func (s staticInterpreter) Interpret(string) string { return string(s) }

type noTranscriber struct{}

func (noTranscriber) Transcribe(context.Context, []byte) (string, bool) { return "", false }

func TestNewEngine(t *testing.T) {
	r := NewEngine(gin.TestMode, handlers.NewCommandHandler(staticInterpreter("ok"), noTranscriber{}, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/process-text", strings.NewReader(`{"command":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"response":"ok"}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestHTTPServer_StartStop(t *testing.T) {
	srv := NewHTTPServer(config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            0,
		ShutdownTimeout: time.Second,
	}, http.NotFoundHandler())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, srv.Stop())

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("服务器未退出")
	}
}
