package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/store/memory"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestJanitor_Sweep(t *testing.T) {
	ctx := context.Background()
	clock := &manualClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	mem := memory.NewWithClock(clock.Now)

	if err := mem.Put(ctx, "session:short", "{}", time.Hour); err != nil {
		t.Fatal(err)
	}
	if err := mem.Put(ctx, "session:long", "{}", 48*time.Hour); err != nil {
		t.Fatal(err)
	}
	if err := mem.Put(ctx, "data", "{}", 0); err != nil {
		t.Fatal(err)
	}

	j := NewJanitor(mem, logger.New("error", false), time.Hour)

	if n := j.Sweep(); n != 0 {
		t.Errorf("Sweep() before expiry = %d, want 0", n)
	}

	clock.Advance(25 * time.Hour)

	if n := j.Sweep(); n != 1 {
		t.Errorf("Sweep() = %d, want 1", n)
	}
	if mem.Len() != 2 {
		t.Errorf("Len() = %d, want 2", mem.Len())
	}
	if _, err := mem.Get(ctx, "data"); err != nil {
		t.Errorf("document without TTL was swept: %v", err)
	}
}

type countingSweeper struct {
	mu    sync.Mutex
	calls int
}

func (c *countingSweeper) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return 0
}

func (c *countingSweeper) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestJanitor_StartStop(t *testing.T) {
	sw := &countingSweeper{}
	j := NewJanitor(sw, logger.New("error", false), 5*time.Millisecond)

	j.Start(context.Background())

	deadline := time.Now().Add(2 * time.Second)
	for sw.Calls() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	j.Stop()
	j.Stop()

	if sw.Calls() < 2 {
		t.Fatalf("janitor ran %d sweeps, want at least 2", sw.Calls())
	}

	after := sw.Calls()
	time.Sleep(20 * time.Millisecond)
	if sw.Calls() != after {
		t.Error("janitor kept sweeping after Stop")
	}
}

func TestJanitor_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	j := NewJanitor(&countingSweeper{}, logger.New("error", false), time.Hour)
	j.Start(ctx)
	cancel()

	select {
	case <-j.done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not exit on context cancel")
	}
}

func TestNewJanitor_DefaultInterval(t *testing.T) {
	j := NewJanitor(&countingSweeper{}, logger.New("error", false), 0)
	if j.interval != DefaultSweepInterval {
		t.Errorf("interval = %v, want %v", j.interval, DefaultSweepInterval)
	}
}
