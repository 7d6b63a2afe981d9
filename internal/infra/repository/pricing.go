package repository

import (
	"context"
	"errors"

	"lounge-engine/internal/domain/pricing"
	"lounge-engine/internal/infra"
	"lounge-engine/internal/infra/recordstore"
)

var errNoPricing = errors.New("pricing record missing")

type PricingRepository struct {
	client *recordstore.Client
}

func NewPricingRepository(client *recordstore.Client) *PricingRepository {
	return &PricingRepository{client: client}
}

// FindByBranch returns the branch's rate card. The store holds one pricing
// record per branch; when history accumulates, the newest wins. Rates are
// read at calculation time only and never reapplied to stored amounts.
func (r *PricingRepository) FindByBranch(ctx context.Context, branchID string) (pricing.Table, error) {
	var recs []pricingRecord
	_, err := r.client.GetList(ctx, CollectionPricing, 1, 1, recordstore.ListOptions{
		Filter: recordstore.Eq("branch_id", branchID),
		Sort:   "-created",
	}, &recs)
	if err != nil {
		return pricing.Table{}, wrapStoreErr("failed to load pricing", err)
	}
	if len(recs) == 0 {
		return pricing.Table{}, infra.WrapRepoErr("no pricing record for branch", errNoPricing, infra.KindNotFound)
	}

	// A record with every rate zeroed cannot price anything; treat it the
	// same as missing configuration.
	table := recs[0].toDomain()
	if err := table.Validate(); err != nil {
		return pricing.Table{}, infra.WrapRepoErr("pricing record unusable", err, infra.KindNotFound)
	}
	return table, nil
}
