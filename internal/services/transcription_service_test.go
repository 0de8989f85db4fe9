package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recognizerFunc 函数形式的语音识别器
type recognizerFunc func(ctx context.Context, path string) (string, error)

func (f recognizerFunc) RecognizeFile(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}

func pcmSamples(n int) []byte {
	data := make([]byte, n*2)
	for i := 0; i < n; i++ {
		data[i*2] = byte(i)
		data[i*2+1] = byte(i >> 8)
	}
	return data
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "临时文件未被清理")
}

func TestTranscriptionService_Success(t *testing.T) {
	dir := t.TempDir()
	var seenPath string

	recognizer := recognizerFunc(func(_ context.Context, path string) (string, error) {
		seenPath = path

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()

		d := wav.NewDecoder(f)
		require.True(t, d.IsValidFile())
		assert.Equal(t, uint16(1), d.NumChans)
		assert.Equal(t, uint16(16), d.BitDepth)
		assert.Equal(t, uint32(16000), d.SampleRate)

		return "  Open Google ", nil
	})

	svc := NewTranscriptionService(recognizer, 16000, dir)
	text, ok := svc.Transcribe(context.Background(), pcmSamples(1600))

	assert.True(t, ok)
	assert.Equal(t, "open google", text)
	require.NotEmpty(t, seenPath)
	assert.NoFileExists(t, seenPath)
	assertDirEmpty(t, dir)
}

func TestTranscriptionService_Failures(t *testing.T) {
	tests := []struct {
		name       string
		audio      []byte
		recognizer recognizerFunc
	}{
		{
			name:  "识别服务出错",
			audio: pcmSamples(100),
			recognizer: func(context.Context, string) (string, error) {
				return "", errors.New("service unavailable")
			},
		},
		{
			name:  "识别结果为空",
			audio: pcmSamples(100),
			recognizer: func(context.Context, string) (string, error) {
				return "   ", nil
			},
		},
		{
			name:  "识别服务panic",
			audio: pcmSamples(100),
			recognizer: func(context.Context, string) (string, error) {
				panic("boom")
			},
		},
		{
			name:  "识别服务提前删除文件",
			audio: pcmSamples(100),
			recognizer: func(_ context.Context, path string) (string, error) {
				_ = os.Remove(path)
				return "", errors.New("decode failed")
			},
		},
		{
			name:  "空音频",
			audio: nil,
			recognizer: func(context.Context, string) (string, error) {
				t.Fatal("空音频不应调用识别服务")
				return "", nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			svc := NewTranscriptionService(tt.recognizer, 16000, dir)

			text, ok := svc.Transcribe(context.Background(), tt.audio)

			assert.False(t, ok)
			assert.Empty(t, text)
			assertDirEmpty(t, dir)
		})
	}
}

func TestTranscriptionService_OddByteDropped(t *testing.T) {
	dir := t.TempDir()
	var size int64

	recognizer := recognizerFunc(func(_ context.Context, path string) (string, error) {
		info, err := os.Stat(path)
		require.NoError(t, err)
		size = info.Size()
		return "hello", nil
	})

	svc := NewTranscriptionService(recognizer, 16000, dir)
	_, ok := svc.Transcribe(context.Background(), append(pcmSamples(10), 0x7f))

	require.True(t, ok)
	assert.Equal(t, int64(44+20), size)
}

func TestTranscriptionService_BadTempDir(t *testing.T) {
	recognizer := recognizerFunc(func(context.Context, string) (string, error) {
		return "hello", nil
	})

	svc := NewTranscriptionService(recognizer, 16000, "/nonexistent/voice-assistant")
	_, ok := svc.Transcribe(context.Background(), pcmSamples(10))

	assert.False(t, ok)
}
