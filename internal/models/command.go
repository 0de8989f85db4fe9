package models

// TextRequest 文本命令请求
type TextRequest struct {
	Command string `json:"command"`
}

// AudioRequest 音频命令请求，Audio 为 base64 编码的 PCM 数据
type AudioRequest struct {
	Audio string `json:"audio"`
}

// Response 命令处理结果
type Response struct {
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Command  string `json:"command,omitempty"`
	Error    string `json:"error,omitempty"`
}

// CommandInterpreter 命令解释接口
type CommandInterpreter interface {
	Interpret(command string) string
}

// BrowserLauncher 打开网页，失败不返回给调用方
type BrowserLauncher interface {
	Open(url string)
}

// Speaker 文本朗读接口
type Speaker interface {
	Speak(text string) error
}
