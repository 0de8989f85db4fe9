package config

// BrowserConfig 浏览器打开配置
type BrowserConfig struct {
	Enabled *bool       `yaml:"enabled"` // 是否真正打开浏览器，默认开启
	Sites   SitesConfig `yaml:"sites"`   // 命令对应的站点
}

// SitesConfig 各命令打开的地址
type SitesConfig struct {
	GitHub  string `yaml:"github"`
	ChatGPT string `yaml:"chatgpt"`
	YouTube string `yaml:"youtube"`
	Google  string `yaml:"google"`
}

// IsEnabled 返回是否打开浏览器
func (c BrowserConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

func (c *BrowserConfig) setDefaults() {
	if c.Sites.GitHub == "" {
		c.Sites.GitHub = "https://github.com/princedeora18"
	}
	if c.Sites.ChatGPT == "" {
		c.Sites.ChatGPT = "https://chatgpt.com"
	}
	if c.Sites.YouTube == "" {
		c.Sites.YouTube = "https://www.youtube.com"
	}
	if c.Sites.Google == "" {
		c.Sites.Google = "https://www.google.com"
	}
}

// Validate 验证站点配置
func (c *BrowserConfig) Validate() error {
	for _, u := range []string{c.Sites.GitHub, c.Sites.ChatGPT, c.Sites.YouTube, c.Sites.Google} {
		if u == "" {
			return ErrEmptySiteURL
		}
	}
	return nil
}
