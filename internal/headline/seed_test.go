package headline

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestSeeder_EmptyStore(t *testing.T) {
	store := &memStore{}
	metrics := newCountingMetrics()
	s := NewSeeder(store, nil, metrics, nil, 250)

	n, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if n != 250 {
		t.Fatalf("seeded %d, want 250", n)
	}
	if got, _ := store.Count(context.Background()); got != 250 {
		t.Fatalf("store count = %d, want 250", got)
	}
	if store.saveAlls.Load() != 1 {
		t.Fatalf("SaveAll calls = %d, want exactly 1", store.saveAlls.Load())
	}
	if metrics.times[MetricSeedDuration] != 1 {
		t.Fatalf("seed not timed: %v", metrics.times)
	}
}

func TestSeeder_NonEmptyStoreIsNoop(t *testing.T) {
	store := &memStore{}
	_ = store.Save(context.Background(), &Headline{Text: "Mord in Bremen", Domestic: true})

	n, err := NewSeeder(store, nil, nil, nil, 100).Run(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("Run = %d, %v; want 0, nil", n, err)
	}
	if store.saveAlls.Load() != 0 {
		t.Fatal("SaveAll called on non-empty store")
	}
}

func TestSeeder_OncePerProcess(t *testing.T) {
	store := &memStore{}
	s := NewSeeder(store, nil, nil, nil, 50)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Run(context.Background()); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	// A later call, even on a store emptied behind our back, is a no-op.
	store.rows = nil
	if n, _ := s.Run(context.Background()); n != 0 {
		t.Fatalf("second Run seeded %d rows", n)
	}
	if store.saveAlls.Load() != 1 {
		t.Fatalf("SaveAll calls = %d, want 1", store.saveAlls.Load())
	}
}

func TestSeeder_ErrorAllowsRetry(t *testing.T) {
	store := &memStore{err: errors.New("db down")}
	s := NewSeeder(store, nil, nil, nil, 10)

	if _, err := s.Run(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	store.err = nil
	n, err := s.Run(context.Background())
	if err != nil || n != 10 {
		t.Fatalf("retry Run = %d, %v; want 10, nil", n, err)
	}
}

func TestNewSeeder_DefaultQuantity(t *testing.T) {
	if s := NewSeeder(&memStore{}, nil, nil, nil, 0); s.quantity != DefaultSeedQuantity {
		t.Fatalf("quantity = %d, want %d", s.quantity, DefaultSeedQuantity)
	}
}
