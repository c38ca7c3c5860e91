package lru

import "testing"

func TestGetPut(t *testing.T) {
	c := New[string, int](nil)
	c.Put("a", 1)

	v, ok := c.Get("a")
	if !ok || v != 1 {
		t.Errorf("expected (1, true), got (%d, %v)", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}
}

func TestEvictionOrder(t *testing.T) {
	c := New[string, int](nil)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	k, v, ok := c.PeekOldest()
	if !ok || k != "a" || v != 1 {
		t.Errorf("expected oldest (a, 1), got (%s, %d, %v)", k, v, ok)
	}

	// Access promotes: "a" becomes the most recent.
	c.Get("a")
	if k, _, _ := c.PeekOldest(); k != "b" {
		t.Errorf("expected oldest b after promoting a, got %s", k)
	}

	if !c.RemoveOldest() {
		t.Fatal("RemoveOldest failed on non-empty cache")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
}

func TestRemovalListener(t *testing.T) {
	var removed []string
	c := New[string, int](func(k string, _ int) {
		removed = append(removed, k)
	})

	c.Put("a", 1)
	c.Put("b", 2)

	// Replacement notifies for the displaced value.
	c.Put("a", 10)
	if len(removed) != 1 || removed[0] != "a" {
		t.Fatalf("expected replacement notification for a, got %v", removed)
	}
	if v, _ := c.Get("a"); v != 10 {
		t.Errorf("expected replaced value 10, got %d", v)
	}

	c.Remove("b")
	if len(removed) != 2 || removed[1] != "b" {
		t.Fatalf("expected removal notification for b, got %v", removed)
	}
}

func TestClearNotifiesOldestFirst(t *testing.T) {
	var removed []string
	c := New[string, int](func(k string, _ int) {
		removed = append(removed, k)
	})

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("expected empty cache after Clear, got %d entries", c.Len())
	}
	want := []string{"a", "b", "c"}
	if len(removed) != len(want) {
		t.Fatalf("expected %d notifications, got %v", len(want), removed)
	}
	for i := range want {
		if removed[i] != want[i] {
			t.Errorf("notification %d: expected %s, got %s", i, want[i], removed[i])
		}
	}
}

func TestRange(t *testing.T) {
	c := New[string, int](nil)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	var keys []string
	c.Range(func(k string, _ int) bool {
		keys = append(keys, k)
		return true
	})
	if len(keys) != 3 || keys[0] != "a" || keys[2] != "c" {
		t.Errorf("expected oldest-first iteration, got %v", keys)
	}

	// Early stop.
	n := 0
	c.Range(func(string, int) bool {
		n++
		return false
	})
	if n != 1 {
		t.Errorf("expected iteration to stop after 1, got %d", n)
	}
}

func TestEmptyCache(t *testing.T) {
	c := New[string, int](nil)
	if c.RemoveOldest() {
		t.Error("RemoveOldest should fail on empty cache")
	}
	if _, _, ok := c.PeekOldest(); ok {
		t.Error("PeekOldest should fail on empty cache")
	}
	c.Clear()
}
