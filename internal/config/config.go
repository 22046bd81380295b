package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	TelegramBotToken string
	DatabaseURL      string
	RedisURL         string
	ServerPort       int
	APIKey           string

	BacktestDays    int
	WindowDays      int
	RiskFreeRate    float64
	RecsRefreshSecs int
}

func Load() *Config {
	cfg := &Config{
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		APIKey:           strings.TrimSpace(os.Getenv("API_KEY")),
	}

	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set")
	}
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL not set, recommendations will not be persisted")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}
	if cfg.APIKey == "" {
		log.Println("Warning: API_KEY not set, API authentication disabled")
	}

	cfg.ServerPort = 8080
	if v := strings.TrimSpace(os.Getenv("SERVER_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n < 65536 {
			cfg.ServerPort = n
		}
	}

	cfg.BacktestDays = 30
	if v := strings.TrimSpace(os.Getenv("BACKTEST_DAYS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BacktestDays = n
		}
	}

	cfg.WindowDays = 30
	if v := strings.TrimSpace(os.Getenv("WINDOW_DAYS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WindowDays = n
		}
	}

	cfg.RiskFreeRate = 0.02
	if v := strings.TrimSpace(os.Getenv("RISK_FREE_RATE")); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n >= 0 && n < 1 {
			cfg.RiskFreeRate = n
		}
	}

	cfg.RecsRefreshSecs = 21600
	if v := strings.TrimSpace(os.Getenv("RECS_REFRESH_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RecsRefreshSecs = n
		}
	}

	return cfg
}
