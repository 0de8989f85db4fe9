package services

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"voice_assistant/internal/models"
)

// WAV 容器参数：单声道、16位、PCM
const (
	wavChannels    = 1
	wavBitDepth    = 16
	wavFormatPCM   = 1
	tempWAVPattern = "voice-*.wav"
)

var errEmptyAudio = errors.New("音频数据为空")

// TranscriptionService 将原始PCM音频写入临时WAV文件并调用语音识别
type TranscriptionService struct {
	recognizer models.SpeechRecognizer
	sampleRate int
	tempDir    string
}

// NewTranscriptionService 创建新的转写服务
func NewTranscriptionService(recognizer models.SpeechRecognizer, sampleRate int, tempDir string) *TranscriptionService {
	return &TranscriptionService{
		recognizer: recognizer,
		sampleRate: sampleRate,
		tempDir:    tempDir,
	}
}

// Transcribe 转写音频，任何错误都只记录日志并返回 false
func (s *TranscriptionService) Transcribe(ctx context.Context, audioData []byte) (text string, ok bool) {
	var path string
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] 语音识别异常: %v", r)
			text, ok = "", false
		}
		removeTempFile(path)
	}()

	var err error
	path, err = s.writeTempWAV(audioData)
	if err != nil {
		log.Printf("[ERROR] 写入临时WAV文件失败: %v", err)
		return "", false
	}

	result, err := s.recognizer.RecognizeFile(ctx, path)
	if err != nil {
		log.Printf("[ERROR] 语音识别失败: %v", err)
		return "", false
	}

	text = strings.ToLower(strings.TrimSpace(result))
	if text == "" {
		log.Printf("[WARN] 语音识别结果为空")
		return "", false
	}

	log.Printf("[INFO] 语音识别结果: %s", text)
	return text, true
}

// writeTempWAV 创建临时WAV文件，出错时也返回已创建的路径以便清理
func (s *TranscriptionService) writeTempWAV(audioData []byte) (string, error) {
	if len(audioData) < 2 {
		return "", errEmptyAudio
	}

	f, err := os.CreateTemp(s.tempDir, tempWAVPattern)
	if err != nil {
		return "", fmt.Errorf("创建临时文件失败: %w", err)
	}
	path := f.Name()

	if err := s.encodeWAV(f, audioData); err != nil {
		f.Close()
		return path, err
	}
	if err := f.Close(); err != nil {
		return path, fmt.Errorf("关闭临时文件失败: %w", err)
	}
	return path, nil
}

// encodeWAV 将小端16位PCM写成WAV，末尾不足一个采样的字节被丢弃
func (s *TranscriptionService) encodeWAV(f *os.File, audioData []byte) error {
	samples := make([]int, len(audioData)/2)
	for i := range samples {
		samples[i] = int(int16(binary.LittleEndian.Uint16(audioData[i*2:])))
	}

	enc := wav.NewEncoder(f, s.sampleRate, wavBitDepth, wavChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: wavChannels,
			SampleRate:  s.sampleRate,
		},
		Data:           samples,
		SourceBitDepth: wavBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		enc.Close()
		return fmt.Errorf("写入WAV数据失败: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("写入WAV头失败: %w", err)
	}
	return nil
}

// removeTempFile 删除临时文件，文件不存在时忽略
func removeTempFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[WARN] 删除临时文件失败: %s, %v", path, err)
	}
}
