package repository

import (
	"context"

	"nifty-navigator/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/trace"
)

const createRecommendationsTable = `
CREATE TABLE IF NOT EXISTS recommendations (
    trade_date   TEXT NOT NULL,
    symbol       TEXT NOT NULL,
    company_name TEXT NOT NULL,
    decision     TEXT NOT NULL,
    confidence   TEXT NOT NULL,
    risk         TEXT NOT NULL,
    PRIMARY KEY (trade_date, symbol)
);

CREATE INDEX IF NOT EXISTS idx_recommendations_date
    ON recommendations (trade_date DESC);
`

type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// RecommendationRepository persists daily recommendation sets. It is a
// warm store, not the source of truth: the seeded generator reproduces
// any set bit-identically, so a missing row is never an error upstream.
type RecommendationRepository struct {
	pool   PgxPool
	tracer trace.Tracer
}

func NewRecommendationRepository(pool PgxPool, tracer trace.Tracer) *RecommendationRepository {
	return &RecommendationRepository{pool: pool, tracer: tracer}
}

func (r *RecommendationRepository) RunMigrations(ctx context.Context) error {
	_, span := r.tracer.Start(ctx, "recommendation-repo.run-migrations")
	defer span.End()

	_, err := r.pool.Exec(ctx, createRecommendationsTable)
	return err
}

func (r *RecommendationRepository) UpsertSet(ctx context.Context, set *domain.RecommendationSet) error {
	if set == nil || len(set.Records) == 0 {
		return nil
	}

	_, span := r.tracer.Start(ctx, "recommendation-repo.upsert-set")
	defer span.End()

	batch := &pgx.Batch{}
	for _, rec := range set.Records {
		batch.Queue(
			`INSERT INTO recommendations (trade_date, symbol, company_name, decision, confidence, risk)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (trade_date, symbol) DO UPDATE SET
			     company_name = EXCLUDED.company_name,
			     decision = EXCLUDED.decision,
			     confidence = EXCLUDED.confidence,
			     risk = EXCLUDED.risk`,
			set.Date, rec.Symbol, rec.CompanyName, rec.Decision, rec.Confidence, rec.Risk,
		)
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range set.Records {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// GetSet returns the stored set for a trading date, or nil if the date
// has no rows.
func (r *RecommendationRepository) GetSet(ctx context.Context, date string) (*domain.RecommendationSet, error) {
	_, span := r.tracer.Start(ctx, "recommendation-repo.get-set")
	defer span.End()

	rows, err := r.pool.Query(ctx,
		`SELECT symbol, company_name, decision, confidence, risk
		 FROM recommendations
		 WHERE trade_date = $1
		 ORDER BY symbol`,
		date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := &domain.RecommendationSet{Date: date}
	for rows.Next() {
		var rec domain.StockDecisionRecord
		if err := rows.Scan(&rec.Symbol, &rec.CompanyName, &rec.Decision, &rec.Confidence, &rec.Risk); err != nil {
			return nil, err
		}
		set.Records = append(set.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(set.Records) == 0 {
		return nil, nil
	}
	return set, nil
}

// ListDates returns the most recent stored trading dates, newest first.
func (r *RecommendationRepository) ListDates(ctx context.Context, limit int) ([]string, error) {
	_, span := r.tracer.Start(ctx, "recommendation-repo.list-dates")
	defer span.End()

	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT trade_date
		 FROM recommendations
		 ORDER BY trade_date DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, rows.Err()
}
