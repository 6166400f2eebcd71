package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/store"
)

// fakeClock is a settable clock for expiry tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.Len() != 0 {
		t.Errorf("New() should start empty, got %d entries", s.Len())
	}
	if _, err := s.Get(context.Background(), "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get() on empty store error = %v, want store.ErrNotFound", err)
	}
}

func TestPutOverwrites(t *testing.T) {
	s := New()
	ctx := context.Background()

	_ = s.Put(ctx, "k", "one", store.NoExpiry)
	_ = s.Put(ctx, "k", "two", store.NoExpiry)

	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "two" {
		t.Errorf("Get() = %q, want %q", got, "two")
	}
}

func TestExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewWithClock(clock.Now)
	ctx := context.Background()

	_ = s.Put(ctx, "session:a", "{}", 24*time.Hour)
	_ = s.Put(ctx, "data", "{}", store.NoExpiry)

	clock.Advance(24*time.Hour - time.Second)
	if _, err := s.Get(ctx, "session:a"); err != nil {
		t.Fatalf("Get() before expiry error = %v", err)
	}

	clock.Advance(time.Second)
	if _, err := s.Get(ctx, "session:a"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get() at expiry error = %v, want store.ErrNotFound", err)
	}
	if keys, _ := s.List(ctx, "session:"); len(keys) != 0 {
		t.Errorf("List() returned expired keys: %v", keys)
	}

	if removed := s.Sweep(); removed != 1 {
		t.Errorf("Sweep() removed %d, want 1", removed)
	}
	if s.Len() != 1 {
		t.Errorf("Len() after sweep = %d, want 1", s.Len())
	}
	if !s.LastSweep().Equal(clock.Now()) {
		t.Errorf("LastSweep() = %v, want %v", s.LastSweep(), clock.Now())
	}
}

func TestListPrefix(t *testing.T) {
	s := New()
	ctx := context.Background()

	_ = s.Put(ctx, "link_apply:1", "a", store.NoExpiry)
	_ = s.Put(ctx, "link_apply:2", "b", store.NoExpiry)
	_ = s.Put(ctx, "session:1", "c", store.NoExpiry)

	keys, err := s.List(ctx, "link_apply:")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "link_apply:1" || keys[1] != "link_apply:2" {
		t.Errorf("List() = %v, want [link_apply:1 link_apply:2]", keys)
	}
}

func TestCancelledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Put(ctx, "k", "v", store.NoExpiry); !errors.Is(err, context.Canceled) {
		t.Errorf("Put() error = %v, want context.Canceled", err)
	}
	if err := s.Ping(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Ping() error = %v, want context.Canceled", err)
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := New()
	ctx := context.Background()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Put(ctx, "k", "v", time.Minute)
		}()
		go func() {
			defer wg.Done()
			_, _ = s.Get(ctx, "k")
			_, _ = s.List(ctx, "")
		}()
	}
	wg.Wait()
}
