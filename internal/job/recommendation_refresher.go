package job

import (
	"context"
	"log"
	"time"

	"nifty-navigator/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// RecommendationRefresher periodically materializes the current trading
// date's recommendation set into the warm stores, so the first dashboard
// request of the day does not pay for generation and persistence.
type RecommendationRefresher struct {
	tracer          trace.Tracer
	sets            RecommendationSetLoader
	latestDate      func() string
	refreshInterval time.Duration
}

type RecommendationSetLoader interface {
	RecommendationSet(ctx context.Context, date string) (*domain.RecommendationSet, error)
}

func NewRecommendationRefresher(tracer trace.Tracer, sets RecommendationSetLoader, latestDate func() string, refreshSecs int) *RecommendationRefresher {
	return &RecommendationRefresher{
		tracer:          tracer,
		sets:            sets,
		latestDate:      latestDate,
		refreshInterval: time.Duration(refreshSecs) * time.Second,
	}
}

// Start refreshes immediately, then on every tick. Blocks until ctx is
// cancelled.
func (r *RecommendationRefresher) Start(ctx context.Context) {
	log.Println("Recommendation refresher starting...")

	r.refresh(ctx)

	ticker := time.NewTicker(r.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Recommendation refresher stopped")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *RecommendationRefresher) refresh(ctx context.Context) {
	ctx, span := r.tracer.Start(ctx, "recommendation-refresher.refresh")
	defer span.End()

	date := r.latestDate()
	set, err := r.sets.RecommendationSet(ctx, date)
	if err != nil {
		log.Printf("refresh recommendations for %s: %v", date, err)
		return
	}
	log.Printf("Refreshed recommendations for %s (%d symbols)", date, len(set.Records))
}
