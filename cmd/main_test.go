package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "voice-assistant "+version+"\n", out.String())
}

func TestServe_InvalidConfig(t *testing.T) {
	t.Setenv("ASR_API_KEY", "")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"serve", "--config", "testdata/does-not-exist.yaml"})

	assert.Error(t, cmd.Execute())
}
