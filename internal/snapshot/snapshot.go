// Package snapshot loads the three dashboard datasets as one immutable unit.
package snapshot

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/care-dashboard/internal/fetcher"
	"github.com/sells-group/care-dashboard/internal/model"
)

// Resource names, relative to the data source.
const (
	PerformanceMetricsFile = "performance_metrics.json"
	ProgramOutcomesFile    = "program_outcomes.json"
	UtilizationLogFile     = "utilization_log.json"
)

// Resources lists the resources in load order.
var Resources = []string{PerformanceMetricsFile, ProgramOutcomesFile, UtilizationLogFile}

// Snapshot holds the datasets of one load. It is read-only after Load returns.
type Snapshot struct {
	ID       string
	Source   string
	LoadedAt time.Time

	Performance []model.PerformanceMetric
	Programs    []model.ProgramOutcome
	Log         []model.UtilizationEntry

	mu  sync.Mutex
	raw map[string][]byte
}

// Load fetches all three resources concurrently. Any failed fetch or decode
// aborts the whole load; there is no partial snapshot.
func Load(ctx context.Context, f fetcher.Fetcher, source string) (*Snapshot, error) {
	s := &Snapshot{
		ID:     uuid.NewString(),
		Source: source,
		raw:    make(map[string][]byte, len(Resources)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := loadResource[model.PerformanceMetric](gctx, s, f, PerformanceMetricsFile)
		s.Performance = rows
		return err
	})
	g.Go(func() error {
		rows, err := loadResource[model.ProgramOutcome](gctx, s, f, ProgramOutcomesFile)
		s.Programs = rows
		return err
	})
	g.Go(func() error {
		rows, err := loadResource[model.UtilizationEntry](gctx, s, f, UtilizationLogFile)
		s.Log = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.LoadedAt = time.Now()
	zap.L().Info("snapshot: loaded",
		zap.String("snapshot_id", s.ID),
		zap.String("source", source),
		zap.Int("performance_rows", len(s.Performance)),
		zap.Int("program_rows", len(s.Programs)),
		zap.Int("log_rows", len(s.Log)),
	)
	return s, nil
}

func loadResource[T any](ctx context.Context, s *Snapshot, f fetcher.Fetcher, name string) ([]T, error) {
	loc, err := fetcher.Resolve(s.Source, name)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to load %s", name)
	}

	body, err := f.Download(ctx, loc)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to load %s", name)
	}
	defer body.Close() //nolint:errcheck

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to load %s", name)
	}

	rows, err := fetcher.DecodeJSONArray[T](bytes.NewReader(data))
	if err != nil {
		return nil, eris.Wrapf(err, "failed to load %s", name)
	}

	s.mu.Lock()
	s.raw[name] = data
	s.mu.Unlock()

	zap.L().Debug("snapshot: resource loaded",
		zap.String("resource", name),
		zap.Int("bytes", len(data)),
		zap.Int("rows", len(rows)),
	)
	return rows, nil
}

// Raw returns the resource body exactly as it was fetched.
func (s *Snapshot) Raw(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.raw[name]
	return data, ok
}

// Orgs returns the organization of every row across the three datasets.
func (s *Snapshot) Orgs() []string {
	out := make([]string, 0, len(s.Performance)+len(s.Programs)+len(s.Log))
	for _, r := range s.Performance {
		out = append(out, r.Org.String())
	}
	for _, r := range s.Programs {
		out = append(out, r.Org.String())
	}
	for _, r := range s.Log {
		out = append(out, r.Org.String())
	}
	return out
}

// Events returns the event name of every log entry.
func (s *Snapshot) Events() []string {
	out := make([]string, 0, len(s.Log))
	for _, r := range s.Log {
		out = append(out, r.Event.String())
	}
	return out
}
