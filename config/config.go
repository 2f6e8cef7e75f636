package config

import (
	"fmt"
	"os"
	"strings"
)

// Config carries every environment-configured value the service needs.
// It is built once in main and passed into each component, so there is
// no package-level state and tests can construct their own.
type Config struct {
	OpenAIAPIKey     string
	WhisperModel     string
	ChatModel        string
	LineChannelToken string // empty disables LINE notifications
	DataFile         string
	UploadDir        string
	ListenAddr       string
	AllowOrigins     string
	Names            []string // closed whitelist of responsible-party names
	LogLevel         string
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		WhisperModel:     os.Getenv("WHISPER_MODEL"),
		ChatModel:        os.Getenv("CHAT_MODEL"),
		LineChannelToken: os.Getenv("LINE_CHANNEL_ACCESS_TOKEN"),
		DataFile:         os.Getenv("DATA_FILE"),
		UploadDir:        os.Getenv("UPLOAD_DIR"),
		ListenAddr:       os.Getenv("LISTEN_ADDR"),
		AllowOrigins:     os.Getenv("ALLOW_ORIGINS"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
	}
	if names := os.Getenv("STAFF_NAMES"); names != "" {
		for _, n := range strings.Split(names, ",") {
			if n = strings.TrimSpace(n); n != "" {
				cfg.Names = append(cfg.Names, n)
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required values and fills in defaults.
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.WhisperModel == "" {
		c.WhisperModel = "whisper-1"
	}
	if c.ChatModel == "" {
		c.ChatModel = "gpt-4o-mini"
	}
	if c.DataFile == "" {
		c.DataFile = "data.xlsx"
	}
	if c.UploadDir == "" {
		c.UploadDir = "uploaded_files"
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":8000"
	}
	if c.AllowOrigins == "" {
		c.AllowOrigins = "http://localhost:3000,http://127.0.0.1:3000"
	}
	if len(c.Names) == 0 {
		c.Names = []string{"佐藤", "鈴木", "田中", "高橋"}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return nil
}
