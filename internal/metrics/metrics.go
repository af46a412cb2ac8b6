// Package metrics holds the Prometheus instruments of the service.
//
// Prom implements the name-based recorder the headline core consumes
// (Inc / Time).  Every instrument carries the const labels
// `umgebung=<environment>` and `funktion=<function>`, so a scrape looks
// like:
//
//	# HELP badnews_suchvorgaenge_total Anzahl der Suchvorgänge (erfolgreich oder nicht).
//	# TYPE badnews_suchvorgaenge_total counter
//	badnews_suchvorgaenge_total{funktion="suche",umgebung="development"} 2
//
// PromQL for searches in the last five minutes:
// increase(badnews_suchvorgaenge_total[5m]).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/yanizio/badnews/internal/headline"
)

const namespace = "badnews"

// Prom records into collectors registered on one registry.  Safe for
// concurrent use; the maps are never written after New.
type Prom struct {
	counters map[string]prometheus.Counter
	timers   map[string]prometheus.Observer
}

var _ headline.Metrics = (*Prom)(nil)

// New creates and registers the recorder's collectors on reg.
func New(reg prometheus.Registerer, environment string) (*Prom, error) {
	labels := func(fn string) prometheus.Labels {
		return prometheus.Labels{"umgebung": environment, "funktion": fn}
	}

	searchTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   namespace,
		Name:        "suchvorgaenge_total",
		Help:        "Anzahl der Suchvorgänge (erfolgreich oder nicht).",
		ConstLabels: labels("suche"),
	})
	generated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   namespace,
		Name:        "schlagzeilen_erzeugt_total",
		Help:        "Anzahl einzeln erzeugter und gespeicherter Schlagzeilen.",
		ConstLabels: labels("erzeugen"),
	})
	searchDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   namespace,
		Name:        "suchdauer_seconds",
		Help:        "Dauer der Suchvorgänge.",
		ConstLabels: labels("suche"),
		Buckets:     prometheus.DefBuckets,
	})
	seedDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   namespace,
		Name:        "seed_dauer_seconds",
		Help:        "Dauer der initialen Befüllung der Schlagzeilen-Tabelle.",
		ConstLabels: labels("seed"),
		Buckets:     prometheus.ExponentialBuckets(0.01, 4, 8),
	})

	for _, c := range []prometheus.Collector{searchTotal, generated, searchDuration, seedDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return &Prom{
		counters: map[string]prometheus.Counter{
			headline.MetricSearchTotal: searchTotal,
			headline.MetricGenerated:   generated,
		},
		timers: map[string]prometheus.Observer{
			headline.MetricSearchDuration: searchDuration,
			headline.MetricSeedDuration:   seedDuration,
		},
	}, nil
}

// Inc increments the counter registered under name.  Unknown names are
// ignored.
func (p *Prom) Inc(name string) {
	c, ok := p.counters[name]
	if !ok {
		zap.S().Debugw("metrics: unknown counter", "name", name)
		return
	}
	c.Inc()
}

// Time runs fn and observes its wall-clock duration under name, whether
// or not fn fails.
func (p *Prom) Time(name string, fn func() error) error {
	obs, ok := p.timers[name]
	if !ok {
		zap.S().Debugw("metrics: unknown timer", "name", name)
		return fn()
	}
	start := time.Now()
	err := fn()
	obs.Observe(time.Since(start).Seconds())
	return err
}

// Nop discards everything.
type Nop struct{}

func (Nop) Inc(string)                           {}
func (Nop) Time(_ string, fn func() error) error { return fn() }
