package headline

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
)

// memStore is an in-memory Store used by service and seeder tests.
type memStore struct {
	mu       sync.Mutex
	rows     []Headline
	nextID   int64
	saveAlls atomic.Int32
	err      error           // returned by every method when set
	extra    []CategoryCount // appended to CountByCategory output
}

func (m *memStore) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.rows)), m.err
}

func (m *memStore) Save(_ context.Context, h *Headline) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	h.ID = m.nextID
	m.rows = append(m.rows, *h)
	return nil
}

func (m *memStore) SaveAll(_ context.Context, hs []Headline) error {
	if m.err != nil {
		return m.err
	}
	m.saveAlls.Add(1)
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, h := range hs {
		m.nextID++
		h.ID = m.nextID
		m.rows = append(m.rows, h)
	}
	return nil
}

func (m *memStore) FindByID(_ context.Context, id int64) (Headline, bool, error) {
	if m.err != nil {
		return Headline{}, false, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, h := range m.rows {
		if h.ID == id {
			return h, true, nil
		}
	}
	return Headline{}, false, nil
}

func (m *memStore) FindAll(_ context.Context, req PageRequest) (Page, error) {
	return m.page(req, func(Headline) bool { return true })
}

func (m *memStore) Search(_ context.Context, term string, req PageRequest) (Page, error) {
	term = strings.ToLower(term)
	return m.page(req, func(h Headline) bool {
		return strings.Contains(strings.ToLower(h.Text), term)
	})
}

func (m *memStore) CountByCategory(context.Context) ([]CategoryCount, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var foreign, domestic int64
	for _, h := range m.rows {
		if h.Domestic {
			domestic++
		} else {
			foreign++
		}
	}
	var out []CategoryCount
	if foreign > 0 {
		out = append(out, CategoryCount{Domestic: false, Count: foreign})
	}
	if domestic > 0 {
		out = append(out, CategoryCount{Domestic: true, Count: domestic})
	}
	return append(out, m.extra...), nil
}

func (m *memStore) page(req PageRequest, keep func(Headline) bool) (Page, error) {
	if m.err != nil {
		return Page{}, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var matched []Headline
	for _, h := range m.rows {
		if keep(h) {
			matched = append(matched, h)
		}
	}
	var content []Headline
	if off := req.Offset(); off < len(matched) {
		content = matched[off:min(off+req.Size, len(matched))]
	}
	return newPage(content, req, int64(len(matched))), nil
}

// countingMetrics records Inc and Time calls.
type countingMetrics struct {
	mu    sync.Mutex
	incs  map[string]int
	times map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{incs: map[string]int{}, times: map[string]int{}}
}

func (c *countingMetrics) Inc(name string) {
	c.mu.Lock()
	c.incs[name]++
	c.mu.Unlock()
}

func (c *countingMetrics) Time(name string, fn func() error) error {
	c.mu.Lock()
	c.times[name]++
	c.mu.Unlock()
	return fn()
}
