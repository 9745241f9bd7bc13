// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	//Search criteria for the one-shot scraper run
	Keywords  []string `yaml:"keywords"`
	Locations []string `yaml:"locations"`

	Server ServerConfig `yaml:"server"`
	Scrape ScrapeConfig `yaml:"scrape"`
}

type ServerConfig struct {
	Port string `yaml:"port" env:"PORT"`
}

type ScrapeConfig struct {
	BaseURL        string `yaml:"base_url"`
	UserAgent      string `yaml:"user_agent"`
	ViewportWidth  int    `yaml:"viewport_width"`
	ViewportHeight int    `yaml:"viewport_height"`
	Headful        bool   `yaml:"headful"`
	//Timeouts and pacing, all in milliseconds
	NavTimeoutMs   int `yaml:"nav_timeout_ms"`
	ReadyTimeoutMs int `yaml:"ready_timeout_ms"`
	DelayMinMs     int `yaml:"delay_min_ms"`
	DelayMaxMs     int `yaml:"delay_max_ms"`
	//Caps that guarantee termination and bound browser memory
	MaxPages    int `yaml:"max_pages"`
	MaxSessions int `yaml:"max_sessions"`
}

func Load() *Config {
	_ = godotenv.Load()

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
		data = nil
	}

	cfg, err := Parse(data)
	if err != nil {
		log.Fatalf("Error parsing config.yaml: %v", err)
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}

	return cfg
}

// Parse unmarshals raw YAML, applies defaults and validates. Split out from
// Load so tests can feed it fixtures without touching the filesystem.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	s := &cfg.Scrape
	if s.BaseURL == "" {
		s.BaseURL = "https://www.linkedin.com/jobs/search"
	}
	if s.UserAgent == "" {
		s.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	}
	if s.ViewportWidth == 0 {
		s.ViewportWidth = 1920
	}
	if s.ViewportHeight == 0 {
		s.ViewportHeight = 1080
	}
	if s.NavTimeoutMs == 0 {
		s.NavTimeoutMs = 30000
	}
	if s.ReadyTimeoutMs == 0 {
		s.ReadyTimeoutMs = 10000
	}
	if s.DelayMinMs == 0 {
		s.DelayMinMs = 2000
	}
	if s.DelayMaxMs == 0 {
		s.DelayMaxMs = 4000
	}
	if s.MaxPages == 0 {
		//100 max results / 25 per page, plus headroom for duplicate cards
		s.MaxPages = 9
	}
	if s.MaxSessions == 0 {
		s.MaxSessions = 3
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
}

func (cfg *Config) validate() error {
	s := cfg.Scrape
	if s.DelayMinMs > s.DelayMaxMs {
		return fmt.Errorf("scrape.delay_min_ms (%d) must not exceed scrape.delay_max_ms (%d)", s.DelayMinMs, s.DelayMaxMs)
	}
	if s.MaxPages < 1 {
		return fmt.Errorf("scrape.max_pages must be at least 1, got %d", s.MaxPages)
	}
	if s.MaxSessions < 1 {
		return fmt.Errorf("scrape.max_sessions must be at least 1, got %d", s.MaxSessions)
	}
	return nil
}
