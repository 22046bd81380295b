package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"nifty-navigator/internal/analytics"
	"nifty-navigator/internal/backtest"
	"nifty-navigator/internal/domain"
	"nifty-navigator/internal/recommend"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const recommendationCacheTTL = 6 * time.Hour

// RecommendationStore is the persistence boundary for daily sets.
type RecommendationStore interface {
	GetSet(ctx context.Context, date string) (*domain.RecommendationSet, error)
	UpsertSet(ctx context.Context, set *domain.RecommendationSet) error
}

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Options tunes the analytics window. Zero values fall back to defaults.
type Options struct {
	HistoryDays  int     // price-series length on symbol backtests
	WindowDays   int     // trading dates covered by aggregate views
	RiskFreeRate float64 // per-period rate for the Sharpe ratio
}

// AnalyticsService orchestrates the seeded recommendation source, the
// backtest engine, and the aggregate calculators behind the dashboard
// endpoints. Recommendation sets are read through Redis with a Postgres
// fallback; determinism makes every tier agree, so a cold cache only
// costs recomputation, never different numbers.
type AnalyticsService struct {
	tracer       trace.Tracer
	store        RecommendationStore
	redis        RedisClient
	gen          *recommend.Generator
	cache        *backtest.Cache
	historyDays  int
	windowDays   int
	riskFreeRate float64
	now          func() time.Time
}

func NewAnalyticsService(
	tracer trace.Tracer,
	store RecommendationStore,
	redisClient RedisClient,
	gen *recommend.Generator,
	opts Options,
) *AnalyticsService {
	if opts.HistoryDays <= 0 {
		opts.HistoryDays = 30
	}
	if opts.WindowDays <= 0 {
		opts.WindowDays = 30
	}
	if opts.RiskFreeRate == 0 {
		opts.RiskFreeRate = analytics.DefaultRiskFreeRate
	}
	if gen == nil {
		gen = recommend.NewGenerator(nil)
	}
	return &AnalyticsService{
		tracer:       tracer,
		store:        store,
		redis:        redisClient,
		gen:          gen,
		cache:        backtest.NewCache(opts.HistoryDays),
		historyDays:  opts.HistoryDays,
		windowDays:   opts.WindowDays,
		riskFreeRate: opts.RiskFreeRate,
		now:          time.Now,
	}
}

// RecommendationSet returns the set for a trading date: Redis first,
// then Postgres, then the seeded generator, backfilling the warmer
// tiers on the way out.
func (s *AnalyticsService) RecommendationSet(ctx context.Context, date string) (*domain.RecommendationSet, error) {
	ctx, span := s.tracer.Start(ctx, "analytics-service.recommendation-set")
	defer span.End()

	if s.redis != nil {
		cached, err := s.getSetCache(ctx, date)
		if err != nil {
			log.Printf("redis cache read error: %v", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	if s.store != nil {
		stored, err := s.store.GetSet(ctx, date)
		if err != nil {
			log.Printf("recommendation store read error for %s: %v", date, err)
		}
		if stored != nil {
			if s.redis != nil {
				_ = s.setSetCache(ctx, stored)
			}
			return stored, nil
		}
	}

	set := s.gen.SetForDate(date)
	if s.store != nil {
		if err := s.store.UpsertSet(ctx, set); err != nil {
			log.Printf("recommendation store write error for %s: %v", date, err)
		}
	}
	if s.redis != nil {
		_ = s.setSetCache(ctx, set)
	}
	return set, nil
}

// BacktestResult returns the memoized simulation for one symbol, keyed
// on its decision in the latest recommendation set.
func (s *AnalyticsService) BacktestResult(ctx context.Context, symbol string) (*domain.BacktestResult, error) {
	ctx, span := s.tracer.Start(ctx, "analytics-service.backtest-result")
	defer span.End()

	if _, ok := domain.CompanyNames[symbol]; !ok {
		return nil, fmt.Errorf("unsupported symbol: %s", symbol)
	}

	set, err := s.RecommendationSet(ctx, s.latestDate())
	if err != nil {
		return nil, err
	}
	rec := set.RecordFor(symbol)
	if rec == nil {
		return nil, nil
	}
	return s.cache.Get(symbol, rec.Decision, s.now()), nil
}

// DateStats rolls up one trading date.
func (s *AnalyticsService) DateStats(ctx context.Context, date string) (domain.DateStats, error) {
	ctx, span := s.tracer.Start(ctx, "analytics-service.date-stats")
	defer span.End()

	set, err := s.RecommendationSet(ctx, date)
	if err != nil {
		return domain.DateStats{}, err
	}
	return analytics.ComputeDateStats(date, set.Records, s.dateOutcomes(set)), nil
}

// ReturnBreakdown explains one date's weighted return symbol by symbol.
func (s *AnalyticsService) ReturnBreakdown(ctx context.Context, date string) (domain.ReturnBreakdown, error) {
	ctx, span := s.tracer.Start(ctx, "analytics-service.return-breakdown")
	defer span.End()

	set, err := s.RecommendationSet(ctx, date)
	if err != nil {
		return domain.ReturnBreakdown{}, err
	}
	return analytics.ComputeReturnBreakdown(date, set.Records, s.dateOutcomes(set)), nil
}

// CumulativeReturns compounds the window's daily weighted returns in
// chronological order, exposing the step chain and formula string.
func (s *AnalyticsService) CumulativeReturns(ctx context.Context) (domain.CumulativeReturns, error) {
	ctx, span := s.tracer.Start(ctx, "analytics-service.cumulative-returns")
	defer span.End()

	stats, err := s.statsSeries(ctx)
	if err != nil {
		return domain.CumulativeReturns{}, err
	}
	return analytics.CompoundReturns(stats), nil
}

// RiskMetrics derives risk statistics over the window.
func (s *AnalyticsService) RiskMetrics(ctx context.Context) (domain.RiskMetrics, error) {
	ctx, span := s.tracer.Start(ctx, "analytics-service.risk-metrics")
	defer span.End()

	stats, err := s.statsSeries(ctx)
	if err != nil {
		return domain.RiskMetrics{}, err
	}
	return analytics.ComputeRiskMetrics(stats, s.riskFreeRate), nil
}

// ReturnDistribution histograms the latest set's 1-day returns. Buckets
// are recomputed on every call.
func (s *AnalyticsService) ReturnDistribution(ctx context.Context) ([]domain.ReturnBucket, error) {
	ctx, span := s.tracer.Start(ctx, "analytics-service.return-distribution")
	defer span.End()

	set, err := s.RecommendationSet(ctx, s.latestDate())
	if err != nil {
		return nil, err
	}
	outcomes := make(map[string]*domain.BacktestResult, len(set.Records))
	for _, rec := range set.Records {
		outcomes[rec.Symbol] = s.cache.Get(rec.Symbol, rec.Decision, s.now())
	}
	return analytics.BucketReturns(set.Records, outcomes), nil
}

// AccuracyTrend reports per-date accuracy by decision type across the
// window, oldest first.
func (s *AnalyticsService) AccuracyTrend(ctx context.Context) ([]domain.AccuracyPoint, error) {
	ctx, span := s.tracer.Start(ctx, "analytics-service.accuracy-trend")
	defer span.End()

	points := make([]domain.AccuracyPoint, 0, s.windowDays)
	for _, date := range recommend.TradingDates(s.now(), s.windowDays) {
		set, err := s.RecommendationSet(ctx, date)
		if err != nil {
			return nil, err
		}
		points = append(points, analytics.ComputeAccuracyPoint(date, set.Records, s.dateOutcomes(set)))
	}
	return points, nil
}

// IndexHistory generates the benchmark index series with the extended
// preset, so the chart stays stable across requests.
func (s *AnalyticsService) IndexHistory(ctx context.Context) ([]domain.PricePoint, error) {
	_, span := s.tracer.Start(ctx, "analytics-service.index-history")
	defer span.End()

	seed := backtest.Seed(domain.IndexSymbol)
	return backtest.GeneratePriceHistory(backtest.ExtendedPreset, seed, 21500, backtest.TrendUp, s.windowDays, s.now()), nil
}

func (s *AnalyticsService) latestDate() string {
	return recommend.TradingDates(s.now(), 1)[0]
}

// dateOutcomes derives every symbol's outcome for the set's date. These
// are pure functions of (symbol, date), so no caching is needed.
func (s *AnalyticsService) dateOutcomes(set *domain.RecommendationSet) map[string]*domain.BacktestResult {
	outcomes := make(map[string]*domain.BacktestResult, len(set.Records))
	for _, rec := range set.Records {
		seed := recommend.DecisionSeed(rec.Symbol, set.Date)
		outcomes[rec.Symbol] = backtest.GenerateOutcome(rec.Symbol, rec.Decision, seed, 0, s.now())
	}
	return outcomes
}

func (s *AnalyticsService) statsSeries(ctx context.Context) ([]domain.DateStats, error) {
	stats := make([]domain.DateStats, 0, s.windowDays)
	for _, date := range recommend.TradingDates(s.now(), s.windowDays) {
		day, err := s.DateStats(ctx, date)
		if err != nil {
			return nil, err
		}
		stats = append(stats, day)
	}
	return stats, nil
}

func (s *AnalyticsService) setSetCache(ctx context.Context, set *domain.RecommendationSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, "recs:"+set.Date, data, recommendationCacheTTL).Err()
}

func (s *AnalyticsService) getSetCache(ctx context.Context, date string) (*domain.RecommendationSet, error) {
	data, err := s.redis.Get(ctx, "recs:"+date).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var set domain.RecommendationSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, err
	}
	return &set, nil
}
