package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("API_KEY", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("BACKTEST_DAYS", "")
	t.Setenv("WINDOW_DAYS", "")
	t.Setenv("RISK_FREE_RATE", "")
	t.Setenv("RECS_REFRESH_SECS", "")

	cfg := Load()
	if cfg.RedisURL != "localhost:6379" {
		t.Fatalf("expected default redis url, got %s", cfg.RedisURL)
	}
	if cfg.ServerPort != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.ServerPort)
	}
	if cfg.BacktestDays != 30 || cfg.WindowDays != 30 {
		t.Fatalf("expected default windows 30/30, got %d/%d", cfg.BacktestDays, cfg.WindowDays)
	}
	if cfg.RiskFreeRate != 0.02 {
		t.Fatalf("expected default risk-free rate 0.02, got %f", cfg.RiskFreeRate)
	}
	if cfg.RecsRefreshSecs != 21600 {
		t.Fatalf("expected default refresh secs 21600, got %d", cfg.RecsRefreshSecs)
	}
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis:6379")
	t.Setenv("API_KEY", "secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BACKTEST_DAYS", "60")
	t.Setenv("WINDOW_DAYS", "14")
	t.Setenv("RISK_FREE_RATE", "0.05")
	t.Setenv("RECS_REFRESH_SECS", "300")

	cfg := Load()
	if cfg.TelegramBotToken != "token" || cfg.DatabaseURL != "postgres://example" || cfg.RedisURL != "redis:6379" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.APIKey != "secret" || cfg.ServerPort != 9090 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.BacktestDays != 60 || cfg.WindowDays != 14 {
		t.Fatalf("expected windows 60/14, got %d/%d", cfg.BacktestDays, cfg.WindowDays)
	}
	if cfg.RiskFreeRate != 0.05 || cfg.RecsRefreshSecs != 300 {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	t.Setenv("BACKTEST_DAYS", "bad")
	t.Setenv("RISK_FREE_RATE", "2.5")
	cfg = Load()
	if cfg.BacktestDays != 30 {
		t.Fatalf("invalid backtest days should fall back to default, got %d", cfg.BacktestDays)
	}
	if cfg.RiskFreeRate != 0.02 {
		t.Fatalf("out-of-range risk-free rate should fall back to default, got %f", cfg.RiskFreeRate)
	}
}
