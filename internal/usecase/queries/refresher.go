package queries

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// AvailabilityRefresher periodically re-derives station availability so the
// cached station flags cannot drift unnoticed from the live sessions. The
// join inside ListStations logs every disagreement it finds; the refresher
// just keeps that join running while no terminal is asking.
type AvailabilityRefresher struct {
	stations StationQueries
	branches []string
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewAvailabilityRefresher(stations StationQueries, branches []string, interval time.Duration, logger *slog.Logger) *AvailabilityRefresher {
	return &AvailabilityRefresher{
		stations: stations,
		branches: branches,
		interval: interval,
		logger:   logger,
	}
}

func (r *AvailabilityRefresher) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil || r.interval <= 0 || len(r.branches) == 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	go r.run(ctx)
}

// Stop cancels the refresh loop and waits for the in-flight sweep to finish.
func (r *AvailabilityRefresher) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel = nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (r *AvailabilityRefresher) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *AvailabilityRefresher) sweep(ctx context.Context) {
	for _, branch := range r.branches {
		views, err := r.stations.ListStations(ctx, branch)
		if err != nil {
			r.logger.Warn("availability sweep failed", "branch_id", branch, "error", err)
			continue
		}
		available := 0
		for _, v := range views {
			if v.Available {
				available++
			}
		}
		r.logger.Debug("availability sweep",
			"branch_id", branch, "stations", len(views), "available", available)
	}
}
