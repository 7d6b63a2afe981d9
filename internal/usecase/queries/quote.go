package queries

import (
	"context"

	"lounge-engine/internal/domain/pricing"
	"lounge-engine/internal/pkg/errs"
)

type QuoteView struct {
	Players        int   `json:"no_of_players"`
	Hours          int   `json:"duration_hours"`
	HourlyRate     int64 `json:"hourly_rate"`
	Total          int64 `json:"total_amount"`
	EarnablePoints int   `json:"earnable_points"`
}

type QuoteQueries interface {
	Quote(ctx context.Context, branchID string, players, hours int) (*QuoteView, error)
}

type PricingReader interface {
	FindByBranch(ctx context.Context, branchID string) (pricing.Table, error)
}

type quoteQueriesImpl struct {
	pricing PricingReader
}

func NewQuoteQueries(pricingRepo PricingReader) QuoteQueries {
	return &quoteQueriesImpl{pricing: pricingRepo}
}

// Quote prices a prospective session without touching any record. The same
// band arithmetic runs at booking time, so the quoted total is exactly what
// startSession would store.
func (q *quoteQueriesImpl) Quote(ctx context.Context, branchID string, players, hours int) (*QuoteView, error) {
	if players < 1 {
		return nil, errs.ErrInvalidPlayerCount
	}
	if hours < 1 {
		return nil, errs.ErrInvalidHours
	}

	table, err := q.pricing.FindByBranch(ctx, branchID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPricingNotFound)
	}

	total, err := pricing.Quote(players, hours, table)
	if err != nil {
		return nil, err
	}

	return &QuoteView{
		Players:        players,
		Hours:          hours,
		HourlyRate:     int64(pricing.HourlyRate(players, table)),
		Total:          int64(total),
		EarnablePoints: pricing.RewardPoints(total, table),
	}, nil
}
