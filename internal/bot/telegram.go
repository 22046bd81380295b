package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"nifty-navigator/internal/domain"
	"nifty-navigator/internal/recommend"
	"nifty-navigator/internal/service"

	tele "gopkg.in/telebot.v3"
)

func StartTelegramBot(analytics *service.AnalyticsService) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/backtest", func(c tele.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Send(fmt.Sprintf("Usage: /backtest RELIANCE\nSupported: %s", strings.Join(domain.SupportedSymbols, ", ")))
		}
		symbol := strings.ToUpper(args[0])
		if _, ok := domain.CompanyNames[symbol]; !ok {
			return c.Send(fmt.Sprintf("Unknown symbol: %s\nSupported: %s", symbol, strings.Join(domain.SupportedSymbols, ", ")))
		}
		result, err := analytics.BacktestResult(context.Background(), symbol)
		if err != nil {
			return c.Send(fmt.Sprintf("Error running backtest for %s: %v", symbol, err))
		}
		return c.Send(backtestMessage(symbol, result))
	})

	b.Handle("/risk", func(c tele.Context) error {
		metrics, err := analytics.RiskMetrics(context.Background())
		if err != nil {
			return c.Send(fmt.Sprintf("Error computing risk metrics: %v", err))
		}
		return c.Send(riskMessage(metrics))
	})

	b.Handle("/today", func(c tele.Context) error {
		dates := recommend.TradingDates(time.Now(), 1)
		if len(dates) == 0 {
			return c.Send("No trading date available")
		}
		set, err := analytics.RecommendationSet(context.Background(), dates[0])
		if err != nil {
			return c.Send(fmt.Sprintf("Error loading recommendations: %v", err))
		}
		return c.Send(recommendationsMessage(set))
	})

	log.Println("Telegram bot started")
	go b.Start()
}

func backtestMessage(symbol string, result *domain.BacktestResult) string {
	verdict := "INCORRECT"
	if result.PredictionCorrect {
		verdict = "CORRECT"
	}
	return fmt.Sprintf(
		"%s (%s)\nDecision: %s (%s)\n1D: %.2f%%  1W: %.2f%%  1M: %.2f%%\nPrice: %.2f -> %.2f",
		symbol, domain.CompanyNames[symbol], result.Decision, verdict,
		result.ActualReturn1D, result.ActualReturn1W, result.ActualReturn1M,
		result.PriceAtPrediction, result.CurrentPrice,
	)
}

func riskMessage(metrics domain.RiskMetrics) string {
	return fmt.Sprintf(
		"Portfolio Risk\nSharpe: %.2f\nVolatility: %.2f%%\nMax Drawdown: %.2f%%\nWin Rate: %.2f%%\nWin/Loss: %.2f\nTrades: %d",
		metrics.SharpeRatio, metrics.Volatility, metrics.MaxDrawdownPct,
		metrics.WinRatePct, metrics.WinLossRatio, metrics.TotalTrades,
	)
}

func recommendationsMessage(set *domain.RecommendationSet) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Recommendations for %s\n", set.Date)
	for _, rec := range set.Records {
		fmt.Fprintf(&sb, "%s: %s (%s confidence, %s risk)\n", rec.Symbol, rec.Decision, rec.Confidence, rec.Risk)
	}
	return sb.String()
}
