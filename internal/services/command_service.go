package services

import (
	"log"
	"net/url"
	"strings"
	"time"

	"voice_assistant/internal/config"
	"voice_assistant/internal/models"
)

// 固定回复
const (
	NothingHeardResponse  = "I didn't hear anything"
	GoodbyeResponse       = "Goodbye! Have a nice day!"
	SpecifySearchResponse = "Please specify what you want to search on Youtube."

	youtubeSearchPrefix = "open youtube and search for"
	youtubeResultsURL   = "https://www.youtube.com/results?search_query="
)

// commandRule 命令规则，按顺序匹配，第一个命中的规则生效
type commandRule struct {
	name   string
	match  func(command string) bool
	handle func(s *CommandService, command string) string
}

// commandRules 规则优先级与列表顺序一致
var commandRules = []commandRule{
	{
		name:  "time",
		match: contains("time"),
		handle: func(s *CommandService, _ string) string {
			return "The current time is " + s.now().Format("15:04:05")
		},
	},
	{
		name:  "date",
		match: contains("date"),
		handle: func(s *CommandService, _ string) string {
			return "The current date is " + s.now().Format("January 02, 2006")
		},
	},
	{
		name:  "github",
		match: contains("open github"),
		handle: func(s *CommandService, _ string) string {
			s.browser.Open(s.sites.GitHub)
			return "Opening GitHub"
		},
	},
	{
		name:  "chatgpt",
		match: contains("open chatgpt"),
		handle: func(s *CommandService, _ string) string {
			s.browser.Open(s.sites.ChatGPT)
			return "Opening Chat GPT"
		},
	},
	{
		name:   "youtube",
		match:  contains("open youtube"),
		handle: (*CommandService).handleYoutube,
	},
	{
		name:  "google",
		match: contains("open google"),
		handle: func(s *CommandService, _ string) string {
			s.browser.Open(s.sites.Google)
			return "Opening Google"
		},
	},
	{
		name: "exit",
		match: func(command string) bool {
			return strings.Contains(command, "exit") || strings.Contains(command, "quit")
		},
		handle: func(*CommandService, string) string {
			return GoodbyeResponse
		},
	},
}

func contains(phrase string) func(string) bool {
	return func(command string) bool {
		return strings.Contains(command, phrase)
	}
}

// CommandService 命令解释服务
type CommandService struct {
	browser models.BrowserLauncher
	sites   config.SitesConfig
	now     func() time.Time
}

// NewCommandService 创建新的命令解释服务
func NewCommandService(browser models.BrowserLauncher, sites config.SitesConfig) *CommandService {
	return &CommandService{
		browser: browser,
		sites:   sites,
		now:     time.Now,
	}
}

// SetClock 替换时钟，用于测试
func (s *CommandService) SetClock(now func() time.Time) {
	s.now = now
}

// Interpret 解释命令并返回回复文本
func (s *CommandService) Interpret(command string) string {
	if command == "" {
		return NothingHeardResponse
	}

	lowered := strings.ToLower(command)
	for _, rule := range commandRules {
		if rule.match(lowered) {
			log.Printf("[DEBUG] 命中命令规则: %s", rule.name)
			return rule.handle(s, lowered)
		}
	}

	return "I understand you said: " + command + ". However, I'm not programmed to handle this request yet."
}

// handleYoutube 打开YouTube或在YouTube中搜索
func (s *CommandService) handleYoutube(command string) string {
	if !strings.Contains(command, "search for") {
		s.browser.Open(s.sites.YouTube)
		return "Opening YouTube"
	}

	query := strings.TrimSpace(strings.ReplaceAll(command, youtubeSearchPrefix, ""))
	if query == "" {
		return SpecifySearchResponse
	}

	s.browser.Open(youtubeResultsURL + url.QueryEscape(query))
	return "Searching Youtube for " + query
}
