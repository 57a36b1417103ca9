package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/huuhoait/credit-structuring-core/domain"
)

// DealStatsRepository runs portfolio-level aggregate queries directly
// against database/sql, separately from the GORM connection the other
// repositories use. Aggregate reporting queries like this one don't
// benefit from an ORM layer; a single query with conditional aggregates
// is clearer as raw SQL.
type DealStatsRepository struct {
	db *sql.DB
}

// OpenDealStatsRepository opens its own *sql.DB against dsn using the
// lib/pq driver, independent of any open GORM connection.
func OpenDealStatsRepository(dsn string) (*DealStatsRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open stats connection: %w", err)
	}
	return &DealStatsRepository{db: db}, nil
}

// Close releases the underlying *sql.DB.
func (r *DealStatsRepository) Close() error {
	return r.db.Close()
}

// Stats aggregates every structured deal saved in [dateFrom, dateTo] into
// approval counts, rate, and average-amount summaries.
func (r *DealStatsRepository) Stats(ctx context.Context, dateFrom, dateTo time.Time) (*domain.DealStatistics, error) {
	query := `
		SELECT
			COUNT(*) AS total_deals,
			COUNT(CASE WHEN status = 'approved' THEN 1 END) AS approved_count,
			COUNT(CASE WHEN status = 'needs_review' THEN 1 END) AS needs_review_count,
			AVG(CASE WHEN status = 'approved' THEN (payload->'rules_output'->>'approved_amount')::float8 END) AS avg_approved_amount,
			AVG(CASE WHEN status = 'approved' THEN (payload->'rules_output'->'rate'->>'total_rate')::float8 END) AS avg_total_rate
		FROM structure_deals
		WHERE updated_at BETWEEN $1 AND $2`

	var stats domain.DealStatistics
	var avgApprovedAmount, avgTotalRate sql.NullFloat64

	err := r.db.QueryRowContext(ctx, query, dateFrom, dateTo).Scan(
		&stats.TotalDeals,
		&stats.ApprovedCount,
		&stats.NeedsReviewCount,
		&avgApprovedAmount,
		&avgTotalRate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve deal statistics: %w", err)
	}

	if avgApprovedAmount.Valid {
		stats.AvgApprovedAmount = avgApprovedAmount.Float64
	}
	if avgTotalRate.Valid {
		stats.AvgTotalRate = avgTotalRate.Float64
	}
	if stats.TotalDeals > 0 {
		stats.ApprovalRate = float64(stats.ApprovedCount) / float64(stats.TotalDeals) * 100
	}

	return &stats, nil
}
