// Load envs from .env
// Load YAML config
// Apply env overrides and defaults

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//scraping
	UpstreamURL         string `yaml:"upstream_url"`
	FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds"`
	//cache
	CachePath       string `yaml:"cache_path"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	//server
	Port string `yaml:"port"`
	//background refresh
	RefreshIntervalHours int `yaml:"refresh_interval_hours"`
	//telegram side channel (optional)
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
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
		cfg.Port = port
	}

	//Set default values if not set
	if cfg.UpstreamURL == "" {
		cfg.UpstreamURL = "https://www.pciconcursos.com.br/concursos/"
	}
	if cfg.FetchTimeoutSeconds <= 0 {
		cfg.FetchTimeoutSeconds = 30
	}
	if cfg.CachePath == "" {
		cfg.CachePath = "data/concursos.json"
	}
	if cfg.CacheTTLSeconds <= 0 {
		cfg.CacheTTLSeconds = 3600
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.RefreshIntervalHours <= 0 {
		cfg.RefreshIntervalHours = 6
	}

	return cfg
}
