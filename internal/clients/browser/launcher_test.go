package browser

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenCommand(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{goos: "darwin", want: []string{"open", "https://example.com"}},
		{goos: "windows", want: []string{"cmd", "/c", "start", "https://example.com"}},
		{goos: "linux", want: []string{"xdg-open", "https://example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			cmd := openCommand(tt.goos)("https://example.com")
			assert.Equal(t, tt.want, cmd.Args)
		})
	}
}

func TestLauncher_Disabled(t *testing.T) {
	called := false
	l := &Launcher{
		enabled: false,
		command: func(url string) *exec.Cmd {
			called = true
			return exec.Command("true")
		},
	}

	l.Open("https://example.com")
	assert.False(t, called)
}

func TestLauncher_StartFailureNotSurfaced(t *testing.T) {
	var got string
	l := &Launcher{
		enabled: true,
		command: func(url string) *exec.Cmd {
			got = url
			return exec.Command("/nonexistent/opener", url)
		},
	}

	assert.NotPanics(t, func() { l.Open("https://example.com") })
	assert.Equal(t, "https://example.com", got)
}
