// internal/headline/seed.go
//
// Startup seeding of an empty headline table.
//
// Context
// -------
// When the table is empty, Run generates Quantity headlines and stores them
// with a single SaveAll.  A non-empty table is left alone.  Run is meant to
// be called once during startup, before the listener accepts traffic.
//
// Concurrency
// -----------
// Concurrent callers share one execution through a singleflight.Group, and
// a done flag turns every later call into a no-op.  Together these keep the
// "seed exactly once when empty" rule even if startup tasks run in
// parallel.
package headline

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultSeedQuantity is the number of headlines put into an empty table.
const DefaultSeedQuantity = 5_000

// Seeder fills an empty store once per process.
type Seeder struct {
	store    Store
	gen      *Generator
	metrics  Metrics
	log      *zap.SugaredLogger
	quantity int

	sfg  singleflight.Group
	done atomic.Bool
}

// NewSeeder constructs a Seeder.  quantity < 1 selects DefaultSeedQuantity.
func NewSeeder(store Store, gen *Generator, m Metrics, log *zap.SugaredLogger,
	quantity int) *Seeder {

	if quantity < 1 {
		quantity = DefaultSeedQuantity
	}
	if m == nil {
		m = nopMetrics{}
	}
	if log == nil {
		log = zap.S()
	}
	if gen == nil {
		gen = NewGenerator()
	}
	return &Seeder{store: store, gen: gen, metrics: m, log: log, quantity: quantity}
}

// Run seeds the store if it is empty and returns the number of headlines
// inserted (0 when nothing was done).
func (s *Seeder) Run(ctx context.Context) (int, error) {
	if s.done.Load() {
		return 0, nil
	}
	v, err, _ := s.sfg.Do("seed", func() (any, error) {
		// Re-check after the singleflight barrier.
		if s.done.Load() {
			return 0, nil
		}
		n, err := s.seed(ctx)
		if err == nil {
			s.done.Store(true)
		}
		return n, err
	})
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

func (s *Seeder) seed(ctx context.Context) (int, error) {
	existing, err := s.store.Count(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		s.log.Infow("headline table already populated, not seeding", "count", existing)
		return 0, nil
	}

	s.log.Warnw("headline table is empty, seeding", "quantity", s.quantity)

	start := time.Now()
	err = s.metrics.Time(MetricSeedDuration, func() error {
		return s.store.SaveAll(ctx, s.gen.Many(s.quantity))
	})
	if err != nil {
		return 0, err
	}

	s.log.Warnw("headlines generated and stored",
		"quantity", s.quantity,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return s.quantity, nil
}
