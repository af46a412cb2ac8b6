package headline

import "context"

// Store is the persistence collaborator.  Paged methods always sort by ID
// ascending.  FindByID reports a missing row through ok == false, not an
// error.
type Store interface {
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, h *Headline) error
	SaveAll(ctx context.Context, hs []Headline) error
	FindByID(ctx context.Context, id int64) (h Headline, ok bool, err error)
	FindAll(ctx context.Context, req PageRequest) (Page, error)
	Search(ctx context.Context, term string, req PageRequest) (Page, error)
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
}

// Metrics is the optional metrics collaborator.  metrics.Prom and
// metrics.Nop satisfy it.
type Metrics interface {
	Inc(name string)
	Time(name string, fn func() error) error
}

// Metric names used by this package.
const (
	MetricSearchTotal    = "suchvorgaenge"
	MetricSearchDuration = "suchdauer"
	MetricSeedDuration   = "seed_dauer"
	MetricGenerated      = "schlagzeilen_erzeugt"
)

type nopMetrics struct{}

func (nopMetrics) Inc(string)                           {}
func (nopMetrics) Time(_ string, fn func() error) error { return fn() }
