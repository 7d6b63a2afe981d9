package commands

import (
	"context"

	"lounge-engine/internal/domain/customer"
	"lounge-engine/internal/domain/pricing"
	"lounge-engine/internal/domain/session"
	"lounge-engine/internal/domain/station"
)

type StationRepository interface {
	FindByID(ctx context.Context, id string) (*station.Station, error)
	UpdateStatus(ctx context.Context, id string, status station.Status) error
}

type SessionRepository interface {
	CreateActive(ctx context.Context, s *session.Session, requestKey string) error
	Save(ctx context.Context, s *session.Session) error
	FindByID(ctx context.Context, id string) (*session.Session, error)
	FindByRequestKey(ctx context.Context, requestKey string) (*session.Session, error)
	FindLiveByDevice(ctx context.Context, deviceID string) (*session.Session, error)
}

type PricingRepository interface {
	FindByBranch(ctx context.Context, branchID string) (pricing.Table, error)
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id string) (*customer.Customer, error)
	FindOrCreateByPhone(ctx context.Context, name, phone, branchID string) (*customer.Customer, error)
	UpdatePoints(ctx context.Context, c *customer.Customer) error
}

type GameCatalog interface {
	BumpPopularity(ctx context.Context, gameIDs []string)
}
