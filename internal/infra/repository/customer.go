package repository

import (
	"context"

	"lounge-engine/internal/domain/customer"
	"lounge-engine/internal/infra"
	"lounge-engine/internal/infra/recordstore"
)

type CustomerRepository struct {
	client *recordstore.Client
}

func NewCustomerRepository(client *recordstore.Client) *CustomerRepository {
	return &CustomerRepository{client: client}
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	var rec customerRecord
	if err := r.client.GetOne(ctx, CollectionCustomers, id, &rec); err != nil {
		return nil, wrapStoreErr("failed to find customer by ID", err)
	}
	return rec.toDomain(), nil
}

func (r *CustomerRepository) FindByPhone(ctx context.Context, branchID, phone string) (*customer.Customer, error) {
	filter := recordstore.And(
		recordstore.Eq("branch_id", branchID),
		recordstore.Eq("phone", phone),
	)
	var rec customerRecord
	if err := r.client.GetFirstListItem(ctx, CollectionCustomers, filter, &rec); err != nil {
		return nil, wrapStoreErr("failed to find customer by phone", err)
	}
	return rec.toDomain(), nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	fields := map[string]any{
		"name":          c.Name(),
		"phone":         c.Phone(),
		"branch_id":     c.BranchID(),
		"reward_points": c.Points(),
	}

	var rec customerRecord
	if err := r.client.Create(ctx, CollectionCustomers, fields, &rec); err != nil {
		return wrapStoreErr("failed to create customer", err)
	}
	c.SetID(rec.ID)
	return nil
}

// FindOrCreateByPhone is the counter flow: a walk-in gives a phone number,
// an unknown one becomes a new customer record on the spot.
func (r *CustomerRepository) FindOrCreateByPhone(ctx context.Context, name, phone, branchID string) (*customer.Customer, error) {
	existing, err := r.FindByPhone(ctx, branchID, phone)
	if err == nil {
		return existing, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	fresh, err := customer.New(name, phone, branchID)
	if err != nil {
		return nil, err
	}
	if err := r.Create(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

func (r *CustomerRepository) UpdatePoints(ctx context.Context, c *customer.Customer) error {
	fields := map[string]any{"reward_points": c.Points()}
	if err := r.client.Update(ctx, CollectionCustomers, c.ID(), fields, nil); err != nil {
		return wrapStoreErr("failed to update customer points", err)
	}
	return nil
}
