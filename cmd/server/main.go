package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nifty-navigator/internal/bot"
	"nifty-navigator/internal/cache"
	"nifty-navigator/internal/config"
	"nifty-navigator/internal/db"
	"nifty-navigator/internal/handler"
	"nifty-navigator/internal/job"
	"nifty-navigator/internal/recommend"
	"nifty-navigator/internal/repository"
	"nifty-navigator/internal/service"
	"nifty-navigator/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "nifty-navigator/docs"
)

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	initPostgresFunc       = db.InitPostgres
	initRedisFunc          = cache.InitRedis
	initTracerFunc         = tracing.InitTracer
	newRecommendationRepo  = repository.NewRecommendationRepository
	newGeneratorFunc       = recommend.NewGenerator
	newAnalyticsService    = service.NewAnalyticsService
	newRefresherFunc       = job.NewRecommendationRefresher
	startRefresherFunc     = func(r *job.RecommendationRefresher, ctx context.Context) { go r.Start(ctx) }
	startTelegramBotFunc   = bot.StartTelegramBot
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Nifty Navigator API
// @version         1.0
// @description     Deterministic backtest and risk analytics for Nifty 50 stock recommendations.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init Postgres and Redis
	os.Setenv("DATABASE_URL", cfg.DatabaseURL)
	os.Setenv("REDIS_URL", cfg.RedisURL)
	initPostgresFunc(ctx)
	initRedisFunc(ctx)

	// Init tracing
	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Create repository and run migrations
	var store service.RecommendationStore
	if db.Pool != nil {
		repo := newRecommendationRepo(db.Pool, tracer)
		if err := repo.RunMigrations(ctx); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
		store = repo
	}

	// Seeded recommendation source and analytics service
	var redisClient service.RedisClient
	if cache.Client != nil {
		redisClient = cache.Client
	}
	gen := newGeneratorFunc(nil)
	analyticsService := newAnalyticsService(tracer, store, redisClient, gen, service.Options{
		HistoryDays:  cfg.BacktestDays,
		WindowDays:   cfg.WindowDays,
		RiskFreeRate: cfg.RiskFreeRate,
	})

	// Warm the latest recommendation set on an interval
	refresher := newRefresherFunc(tracer, analyticsService, func() string {
		dates := recommend.TradingDates(time.Now(), 1)
		if len(dates) == 0 {
			return ""
		}
		return dates[0]
	}, cfg.RecsRefreshSecs)
	startRefresherFunc(refresher, ctx)

	// Start Telegram bot
	os.Setenv("TELEGRAM_BOT_TOKEN", cfg.TelegramBotToken)
	startTelegramBotFunc(analyticsService)

	// Create handlers and routes
	h := newHandlerFunc(tracer, analyticsService)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("nifty-navigator"))

	h.RegisterRoutes(r, handler.APIKeyAuth(cfg.APIKey))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
