package asr

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/gorilla/websocket"
)

const defaultXFYunURL = "wss://iat-api.xfyun.cn/v2/iat"

// 音频帧状态
const (
	statusFirstFrame    = 0
	statusContinueFrame = 1
	statusLastFrame     = 2
)

// XFYunConfig 科大讯飞听写配置
type XFYunConfig struct {
	AppID         string        // 应用ID
	APIKey        string        // API密钥
	APISecret     string        // API密钥
	ServerURL     string        // 服务器地址，为空时使用官方地址
	Language      string        // 识别语言，如 en-US
	SampleRate    int           // 采样率
	FrameSize     int           // 每帧字节数
	FrameInterval time.Duration // 帧发送间隔
	Timeout       time.Duration // 单次识别超时
}

// XFYunClient 科大讯飞语音听写 WebSocket 客户端，每次识别使用一个新连接
type XFYunClient struct {
	config XFYunConfig
	now    func() time.Time
}

// xfyunFrame 发送给服务器的音频帧
type xfyunFrame struct {
	Common   *xfyunCommon   `json:"common,omitempty"`
	Business *xfyunBusiness `json:"business,omitempty"`
	Data     xfyunData      `json:"data"`
}

type xfyunCommon struct {
	AppID string `json:"app_id"`
}

type xfyunBusiness struct {
	Language string `json:"language"`
	Domain   string `json:"domain"`
	Accent   string `json:"accent,omitempty"`
}

type xfyunData struct {
	Status   int    `json:"status"`
	Format   string `json:"format"`
	Audio    string `json:"audio"`
	Encoding string `json:"encoding"`
}

// xfyunResponse 服务器返回的识别结果
type xfyunResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Sid     string `json:"sid"`
	Data    struct {
		Status int         `json:"status"`
		Result xfyunResult `json:"result"`
	} `json:"data"`
}

// xfyunResult 单次返回的识别片段
type xfyunResult struct {
	Ls  bool   `json:"ls"`
	Rg  []int  `json:"rg"`
	Sn  int    `json:"sn"`
	Pgs string `json:"pgs"`
	Ws  []struct {
		Bg int `json:"bg"`
		Cw []struct {
			Sc int    `json:"sc"`
			W  string `json:"w"`
		} `json:"cw"`
	} `json:"ws"`
}

func (r *xfyunResult) String() string {
	var text strings.Builder
	for _, ws := range r.Ws {
		for _, cw := range ws.Cw {
			text.WriteString(cw.W)
		}
	}
	return text.String()
}

// resultDecoder 按序号拼接识别片段，pgs 为 rpl 时替换 rg 范围内的旧片段
type resultDecoder struct {
	results []*xfyunResult
}

func (d *resultDecoder) decode(result *xfyunResult) {
	if result.Sn < 0 {
		return
	}
	if len(d.results) <= result.Sn {
		d.results = append(d.results, make([]*xfyunResult, result.Sn-len(d.results)+1)...)
	}
	if result.Pgs == "rpl" && len(result.Rg) == 2 {
		for i := result.Rg[0]; i <= result.Rg[1] && i < len(d.results); i++ {
			if i >= 0 {
				d.results[i] = nil
			}
		}
	}
	d.results[result.Sn] = result
}

func (d *resultDecoder) String() string {
	var text strings.Builder
	for _, r := range d.results {
		if r != nil {
			text.WriteString(r.String())
		}
	}
	return text.String()
}

// NewXFYunClient 创建新的科大讯飞听写客户端
func NewXFYunClient(config XFYunConfig) *XFYunClient {
	if config.ServerURL == "" {
		config.ServerURL = defaultXFYunURL
	}
	if config.FrameSize <= 0 {
		config.FrameSize = 1280 // 16kHz 下每帧40ms
	}
	if config.SampleRate <= 0 {
		config.SampleRate = 16000
	}
	return &XFYunClient{
		config: config,
		now:    time.Now,
	}
}

// RecognizeFile 识别WAV文件
func (c *XFYunClient) RecognizeFile(ctx context.Context, path string) (string, error) {
	pcm, err := readPCM(path)
	if err != nil {
		return "", err
	}
	if len(pcm) == 0 {
		return "", fmt.Errorf("音频数据为空")
	}

	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	authURL, err := c.buildAuthURL()
	if err != nil {
		return "", fmt.Errorf("生成鉴权地址失败: %w", err)
	}

	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, _, err := dialer.DialContext(ctx, authURL, nil)
	if err != nil {
		return "", fmt.Errorf("连接WebSocket失败: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetReadDeadline(deadline)
		conn.SetWriteDeadline(deadline)
	}

	sendErr := make(chan error, 1)
	go func() {
		sendErr <- c.sendFrames(ctx, conn, pcm)
	}()

	text, err := c.readResults(conn)
	if err != nil {
		return "", err
	}
	if err := <-sendErr; err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrNoResult
	}
	return text, nil
}

// sendFrames 分帧发送音频，第一帧带应用和业务参数
func (c *XFYunClient) sendFrames(ctx context.Context, conn *websocket.Conn, pcm []byte) error {
	format := fmt.Sprintf("audio/L16;rate=%d", c.config.SampleRate)

	for i := 0; i < len(pcm); i += c.config.FrameSize {
		end := i + c.config.FrameSize
		if end > len(pcm) {
			end = len(pcm)
		}

		frame := xfyunFrame{
			Data: xfyunData{
				Status:   statusContinueFrame,
				Format:   format,
				Audio:    base64.StdEncoding.EncodeToString(pcm[i:end]),
				Encoding: "raw",
			},
		}
		if i == 0 {
			frame.Data.Status = statusFirstFrame
			frame.Common = &xfyunCommon{AppID: c.config.AppID}
			frame.Business = c.business()
		}

		if err := conn.WriteJSON(frame); err != nil {
			return fmt.Errorf("发送音频帧失败: %w", err)
		}

		if c.config.FrameInterval > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.config.FrameInterval):
			}
		}
	}

	last := xfyunFrame{Data: xfyunData{Status: statusLastFrame, Format: format, Encoding: "raw"}}
	if err := conn.WriteJSON(last); err != nil {
		return fmt.Errorf("发送结束帧失败: %w", err)
	}
	return nil
}

// readResults 读取识别结果直到服务器返回最后一帧
func (c *XFYunClient) readResults(conn *websocket.Conn) (string, error) {
	decoder := &resultDecoder{}
	for {
		var resp xfyunResponse
		if err := conn.ReadJSON(&resp); err != nil {
			return "", fmt.Errorf("读取识别结果失败: %w", err)
		}
		if resp.Code != 0 {
			return "", fmt.Errorf("服务器错误 %d: %s", resp.Code, resp.Message)
		}

		decoder.decode(&resp.Data.Result)
		if resp.Data.Status == statusLastFrame {
			text := decoder.String()
			log.Printf("[DEBUG] 讯飞识别完成: sid=%s, 文本=%s", resp.Sid, text)
			return text, nil
		}
	}
}

// business 返回业务参数，en-US 转换为 en_us
func (c *XFYunClient) business() *xfyunBusiness {
	language := strings.ToLower(strings.ReplaceAll(c.config.Language, "-", "_"))
	if language == "" {
		language = "en_us"
	}
	b := &xfyunBusiness{Language: language, Domain: "iat"}
	if language == "zh_cn" {
		b.Accent = "mandarin"
	}
	return b
}

// buildAuthURL 构建带 HMAC-SHA256 签名的握手地址
func (c *XFYunClient) buildAuthURL() (string, error) {
	u, err := url.Parse(c.config.ServerURL)
	if err != nil {
		return "", err
	}

	date := c.now().UTC().Format(time.RFC1123)
	date = strings.Replace(date, "UTC", "GMT", 1)

	signString := fmt.Sprintf("host: %s\ndate: %s\nGET %s HTTP/1.1", u.Host, date, u.Path)
	mac := hmac.New(sha256.New, []byte(c.config.APISecret))
	mac.Write([]byte(signString))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	authorization := fmt.Sprintf(`api_key="%s", algorithm="hmac-sha256", headers="host date request-line", signature="%s"`,
		c.config.APIKey, signature)

	q := u.Query()
	q.Set("authorization", base64.StdEncoding.EncodeToString([]byte(authorization)))
	q.Set("date", date)
	q.Set("host", u.Host)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// readPCM 读取WAV文件中的16位PCM数据
func readPCM(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("读取音频文件失败: %w", err)
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, errors.New("不是有效的WAV文件")
	}
	if d.BitDepth != 16 {
		return nil, fmt.Errorf("不支持的位深: %d", d.BitDepth)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("解码WAV失败: %w", err)
	}

	pcm := make([]byte, len(buf.Data)*2)
	for i, sample := range buf.Data {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(int16(sample)))
	}
	return pcm, nil
}
