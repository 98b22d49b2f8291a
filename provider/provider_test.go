package provider

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
)

func TestCached_GetCachesValues(t *testing.T) {
	t.Parallel()

	var loads int64
	p := NewCached(10, 4, func(_ context.Context, i int) (string, error) {
		atomic.AddInt64(&loads, 1)
		return fmt.Sprintf("item-%d", i), nil
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		v, err := p.Get(ctx, 7)
		if err != nil || v != "item-7" {
			t.Fatalf("Get(7) = %q, %v", v, err)
		}
	}
	if got := atomic.LoadInt64(&loads); got != 1 {
		t.Fatalf("loader ran %d times, want 1", got)
	}
}

func TestCached_EvictsBeyondLimit(t *testing.T) {
	t.Parallel()

	var loads int64
	p := NewCached(100, 2, func(_ context.Context, i int) (int, error) {
		atomic.AddInt64(&loads, 1)
		return i, nil
	})

	ctx := context.Background()
	for _, i := range []int{0, 1, 2} { // 0 falls out of the 2-entry cache
		if _, err := p.Get(ctx, i); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := p.Get(ctx, 0); err != nil {
		t.Fatal(err)
	}
	if got := atomic.LoadInt64(&loads); got != 4 {
		t.Fatalf("loader ran %d times, want 4 (0 reloaded after eviction)", got)
	}
}

func TestCached_LoadErrorNotCached(t *testing.T) {
	t.Parallel()

	boom := errors.New("decode failed")
	fail := true
	p := NewCached(10, 4, func(_ context.Context, i int) (int, error) {
		if fail {
			return 0, boom
		}
		return i, nil
	})

	ctx := context.Background()
	if _, err := p.Get(ctx, 3); !errors.Is(err, boom) {
		t.Fatalf("Get = %v, want load error", err)
	}
	fail = false
	if v, err := p.Get(ctx, 3); err != nil || v != 3 {
		t.Fatalf("Get after recovery = %d, %v", v, err)
	}
}

// Concurrent misses for the same index must share a single load.
func TestCached_CoalescesConcurrentLoads(t *testing.T) {
	var loads int64
	p := NewCached(10, 8, func(_ context.Context, i int) (string, error) {
		atomic.AddInt64(&loads, 1)
		time.Sleep(5 * time.Millisecond) // simulate a slow decode
		return "v:" + fmt.Sprint(i), nil
	})

	const n = 64
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			v, err := p.Get(context.Background(), 5)
			if err != nil {
				return err
			}
			if v != "v:5" {
				return fmt.Errorf("got %q", v)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if got := atomic.LoadInt64(&loads); got != 1 {
		t.Fatalf("loader ran %d times, want 1", got)
	}
}

func TestCached_Warm(t *testing.T) {
	t.Parallel()

	var loads int64
	p := NewCached(50, 64, func(_ context.Context, i int) (int, error) {
		atomic.AddInt64(&loads, 1)
		return i, nil
	})

	if err := p.Warm(context.Background(), -5, 200, 8); err != nil {
		t.Fatal(err)
	}
	// Bounds clamp to [0, Count); every item loads exactly once.
	if got := atomic.LoadInt64(&loads); got != 50 {
		t.Fatalf("loader ran %d times, want 50", got)
	}
	// Warming again is served entirely from cache.
	if err := p.Warm(context.Background(), 0, 50, 8); err != nil {
		t.Fatal(err)
	}
	if got := atomic.LoadInt64(&loads); got != 50 {
		t.Fatalf("loader reran after warm cache: %d loads", got)
	}
}
