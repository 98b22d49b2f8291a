package lru

import (
	"math/rand"
	"testing"
)

// keys traverses newest→oldest and collects keys.
func keys(c *Cache[int, string]) []int {
	var out []int
	c.ForEach(func(k int, _ string) { out = append(out, k) })
	return out
}

func mustInvariant(t *testing.T, c *Cache[int, string]) {
	t.Helper()
	if err := c.invariant(); err != nil {
		t.Fatal(err)
	}
}

func TestCache_InsertGetDelete(t *testing.T) {
	t.Parallel()

	c := New[int, string](8)
	if _, ok := c.Get(1); ok {
		t.Fatal("empty cache must miss")
	}

	c.Insert(1, "a")
	c.Insert(2, "b")
	mustInvariant(t, c)

	if v, ok := c.Get(1); !ok || v != "a" {
		t.Fatalf("Get(1) = %q,%v; want a,true", v, ok)
	}
	if !c.Delete(1) {
		t.Fatal("Delete(1) must report true")
	}
	if c.Delete(1) {
		t.Fatal("second Delete(1) must report false")
	}
	if _, ok := c.Get(1); ok {
		t.Fatal("deleted key must miss")
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
	mustInvariant(t, c)
}

// Eviction-order scenario: insert 1,2,3; Get(1) promotes 1 to newest;
// Evict(2) must return the two oldest, [2 3], in oldest-first order.
func TestCache_EvictionOrderAfterPromotion(t *testing.T) {
	t.Parallel()

	c := New[int, string](4)
	c.Insert(1, "a")
	c.Insert(2, "b")
	c.Insert(3, "c")
	if _, ok := c.Get(1); !ok {
		t.Fatal("Get(1) must hit")
	}

	ev := c.Evict(2)
	if len(ev) != 2 || ev[0].Key != 2 || ev[1].Key != 3 {
		t.Fatalf("Evict(2) = %v, want keys [2 3] oldest-first", ev)
	}
	if _, ok := c.Get(1); !ok {
		t.Fatal("promoted key 1 must survive")
	}
	mustInvariant(t, c)
}

// Get-promotes property: after touching k, evicting size()-1 entries must
// remove every key except k.
func TestCache_GetPromotes(t *testing.T) {
	t.Parallel()

	c := New[int, string](8)
	for i := 0; i < 6; i++ {
		c.Insert(i, "v")
	}
	c.Get(3)

	ev := c.Evict(c.Len() - 1)
	for _, e := range ev {
		if e.Key == 3 {
			t.Fatal("promoted key 3 must not be evicted")
		}
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
	if _, ok := c.Get(3); !ok {
		t.Fatal("key 3 must remain")
	}
	mustInvariant(t, c)
}

func TestCache_EvictMoreThanResident(t *testing.T) {
	t.Parallel()

	c := New[int, string](4)
	c.Insert(1, "a")
	c.Insert(2, "b")

	ev := c.Evict(10)
	if len(ev) != 2 || ev[0].Key != 1 || ev[1].Key != 2 {
		t.Fatalf("Evict(10) = %v, want keys [1 2]", ev)
	}
	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0", c.Len())
	}
	if c.Evict(1) != nil {
		t.Fatal("Evict on empty cache must return nothing")
	}
	mustInvariant(t, c)
}

func TestCache_DeleteEndpoints(t *testing.T) {
	t.Parallel()

	c := New[int, string](4)
	c.Insert(1, "a") // oldest
	c.Insert(2, "b")
	c.Insert(3, "c") // newest

	c.Delete(3) // newest endpoint
	mustInvariant(t, c)
	c.Delete(1) // oldest endpoint
	mustInvariant(t, c)

	got := keys(c)
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("remaining keys = %v, want [2]", got)
	}

	c.Delete(2) // both endpoints at once
	mustInvariant(t, c)
	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0", c.Len())
	}
}

func TestCache_ForEachNewestFirst(t *testing.T) {
	t.Parallel()

	c := New[int, string](4)
	c.Insert(1, "a")
	c.Insert(2, "b")
	c.Insert(3, "c")
	c.Get(2) // order is now 2,3,1

	got := keys(c)
	want := []int{2, 3, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ForEach order = %v, want %v", got, want)
		}
	}
	// Traversal must not change recency.
	if ev := c.Evict(1); ev[0].Key != 1 {
		t.Fatalf("oldest after ForEach = %d, want 1", ev[0].Key)
	}
}

func TestCache_Clear(t *testing.T) {
	t.Parallel()

	c := New[int, string](4)
	c.Insert(1, "a")
	c.Insert(2, "b")
	c.Clear()

	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0", c.Len())
	}
	mustInvariant(t, c)

	// The cache must be fully usable after Clear, including re-inserting
	// keys that were resident before.
	c.Insert(1, "x")
	if v, ok := c.Get(1); !ok || v != "x" {
		t.Fatalf("Get(1) after Clear = %q,%v", v, ok)
	}
	mustInvariant(t, c)
}

func TestCache_DuplicateInsertPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("duplicate Insert must panic")
		}
	}()
	c := New[int, string](4)
	c.Insert(1, "a")
	c.Insert(1, "b")
}

// Random op mix; the recency invariant must hold after every step.
func TestCache_InvariantUnderRandomOps(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1))
	c := New[int, string](64)
	resident := make(map[int]bool)

	for i := 0; i < 5_000; i++ {
		k := r.Intn(48)
		switch r.Intn(10) {
		case 0, 1, 2: // insert (delete first if resident)
			if resident[k] {
				c.Delete(k)
			}
			c.Insert(k, "v")
			resident[k] = true
		case 3, 4: // delete
			c.Delete(k)
			delete(resident, k)
		case 5: // evict a few
			for _, e := range c.Evict(1 + r.Intn(3)) {
				delete(resident, e.Key)
			}
		default: // get
			_, ok := c.Get(k)
			if ok != resident[k] {
				t.Fatalf("step %d: Get(%d) presence=%v, want %v", i, k, ok, resident[k])
			}
		}
		if err := c.invariant(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if c.Len() != len(resident) {
			t.Fatalf("step %d: Len=%d, model=%d", i, c.Len(), len(resident))
		}
	}
}
