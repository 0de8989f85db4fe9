package config

import "errors"

// 配置相关错误
var (
	ErrInvalidPort       = errors.New("服务器端口必须在1-65535之间")
	ErrInvalidMode       = errors.New("未知的gin运行模式")
	ErrUnknownProvider   = errors.New("未知的语音识别服务")
	ErrEmptyAPIKey       = errors.New("语音识别API密钥不能为空")
	ErrEmptyAppID        = errors.New("科大讯飞AppID不能为空")
	ErrEmptyAPISecret    = errors.New("科大讯飞APISecret不能为空")
	ErrInvalidSampleRate = errors.New("采样率必须大于0")
	ErrEmptySiteURL      = errors.New("站点地址不能为空")
)
