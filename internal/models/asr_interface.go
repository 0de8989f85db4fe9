package models

import "context"

// SpeechRecognizer 外部语音识别服务接口
type SpeechRecognizer interface {
	// RecognizeFile 识别WAV文件并返回文本
	RecognizeFile(ctx context.Context, path string) (string, error)
}

// Transcriber 音频转写接口
type Transcriber interface {
	// Transcribe 将原始PCM音频转为小写文本，失败时返回 false
	Transcribe(ctx context.Context, audioData []byte) (string, bool)
}
