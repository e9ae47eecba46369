package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/care-dashboard/internal/config"
	"github.com/sells-group/care-dashboard/internal/dashboard"
	"github.com/sells-group/care-dashboard/internal/fetcher"
	"github.com/sells-group/care-dashboard/internal/snapshot"
)

// loadSnapshot fetches the three datasets from the configured source.
func loadSnapshot(ctx context.Context, c *config.Config) (*snapshot.Snapshot, error) {
	f, err := fetcher.ForSource(c.Data.Source, fetcher.Options{
		Timeout:   time.Duration(c.Data.TimeoutSecs) * time.Second,
		RateLimit: c.Data.RateLimit,
	})
	if err != nil {
		return nil, err
	}

	snap, err := snapshot.Load(ctx, f, c.Data.Source)
	if err != nil {
		zap.L().Error("dashboard data load failed",
			zap.String("source", c.Data.Source),
			zap.Error(err),
		)
		return nil, err
	}
	return snap, nil
}

// loadDashboard loads a snapshot and wraps it for view computation.
func loadDashboard(ctx context.Context, c *config.Config) (*snapshot.Snapshot, *dashboard.Dashboard, error) {
	snap, err := loadSnapshot(ctx, c)
	if err != nil {
		return nil, nil, err
	}
	return snap, dashboard.New(snap, c.Dashboard.DefaultOrg), nil
}
