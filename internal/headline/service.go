// internal/headline/service.go
//
// Request-level operations behind the web components.
//
// Context
// -------
// Each method is one validation, one store query, and one shaping step.
// The Service keeps no state between calls; its fields are the injected
// collaborators only.
//
//   - Search      – JSON search API.
//   - ListPage    – paginated list page.
//   - Get         – detail page.
//   - Statistics  – per-category counts.
//   - Add         – one generated headline (CLI).
package headline

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// MinSearchLength is the minimum trimmed length of a search term, in runes.
const MinSearchLength = 3

// SearchHit is the public shape of one search match.  The category flag is
// intentionally absent.
type SearchHit struct {
	ID   int64  `json:"id"`
	Text string `json:"schlagzeile"`
}

// SearchResult carries the hits plus the metadata the API emits as headers.
type SearchResult struct {
	Hits          []SearchHit
	TotalElements int64
	TotalPages    int
	PageElements  int
}

// Statistics is the grouping result plus its sum.
type Statistics struct {
	Rows []CategoryCount
	Sum  int64
}

// Service wires a Store, a Generator, and an optional Metrics recorder.
type Service struct {
	store   Store
	gen     *Generator
	metrics Metrics
	log     *zap.SugaredLogger
}

// NewService constructs a Service.  A nil m disables metrics; a nil log
// falls back to the global zap logger.
func NewService(store Store, gen *Generator, m Metrics, log *zap.SugaredLogger) *Service {
	if m == nil {
		m = nopMetrics{}
	}
	if log == nil {
		log = zap.S()
	}
	if gen == nil {
		gen = NewGenerator()
	}
	return &Service{store: store, gen: gen, metrics: m, log: log}
}

// Search finds headlines containing query, ignoring case.  page is 1-based.
// No matches is a valid, empty result.
func (s *Service) Search(ctx context.Context, query string, page, size int) (SearchResult, error) {
	s.metrics.Inc(MetricSearchTotal)

	var res SearchResult
	err := s.metrics.Time(MetricSearchDuration, func() error {
		term := strings.TrimSpace(query)
		if utf8.RuneCountInString(term) < MinSearchLength {
			return invalidParameter("Such-String muss mindestens drei Zeichen haben")
		}
		if err := CheckPageAndSize(page, size); err != nil {
			return err
		}

		p, err := s.store.Search(ctx, term, PageRequest{Number: page - 1, Size: size})
		if err != nil {
			return err
		}

		hits := make([]SearchHit, 0, len(p.Content))
		for _, h := range p.Content {
			hits = append(hits, SearchHit{ID: h.ID, Text: h.Text})
		}
		res = SearchResult{
			Hits:          hits,
			TotalElements: p.TotalElements,
			TotalPages:    p.TotalPages,
			PageElements:  p.NumberOfElements(),
		}
		s.log.Debugw("search", "term", term, "page", page, "size", size,
			"total", p.TotalElements)
		return nil
	})
	if err != nil {
		return SearchResult{}, err
	}
	return res, nil
}

// ListPage returns the 1-based page of all headlines by ascending ID.
func (s *Service) ListPage(ctx context.Context, page, size int) (Page, error) {
	if err := CheckPageAndSize(page, size); err != nil {
		return Page{}, err
	}
	p, err := s.store.FindAll(ctx, PageRequest{Number: page - 1, Size: size})
	if err != nil {
		return Page{}, err
	}
	if err := CheckResultPage(page, p); err != nil {
		return Page{}, err
	}
	return p, nil
}

// Get returns the headline with id.
func (s *Service) Get(ctx context.Context, id int64) (Headline, error) {
	h, ok, err := s.store.FindByID(ctx, id)
	if err != nil {
		return Headline{}, err
	}
	if !ok {
		return Headline{}, notFound("Keine Schlagzeile mit ID=%d gefunden.", id)
	}
	return h, nil
}

// Statistics counts headlines per category.  Only two flag values exist,
// so a third row means the store answered something unexpected.
func (s *Service) Statistics(ctx context.Context) (Statistics, error) {
	rows, err := s.store.CountByCategory(ctx)
	if err != nil {
		return Statistics{}, err
	}
	if len(rows) > 2 {
		return Statistics{}, inconsistentState(
			"Mehr als zwei Einträge in Ergebnisliste für Statistik: %d", len(rows))
	}

	var sum int64
	for _, r := range rows {
		sum += r.Count
	}
	return Statistics{Rows: rows, Sum: sum}, nil
}

// Add generates one headline and stores it.
func (s *Service) Add(ctx context.Context) (Headline, error) {
	h := s.gen.One()
	if err := s.store.Save(ctx, &h); err != nil {
		return Headline{}, err
	}
	s.metrics.Inc(MetricGenerated)
	s.log.Infow("headline added", "id", h.ID, "text", h.Text, "inland", h.Domestic)
	return h, nil
}
