package checklist

import (
	"testing"

	"github.com/anuragpatil2882004-ui/job-traking/internal/store"
)

func TestItemsDefaultToUnchecked(t *testing.T) {
	t.Parallel()

	c := New(store.NewMemory())

	items := c.Items()
	if len(items) != Total {
		t.Fatalf("expected %d items, got %d", Total, len(items))
	}
	for i, checked := range items {
		if checked {
			t.Fatalf("expected item %d unchecked", i)
		}
	}
}

func TestSetItemBounds(t *testing.T) {
	t.Parallel()

	c := New(store.NewMemory())

	if c.SetItem(-1, true) || c.SetItem(Total, true) {
		t.Fatalf("expected out-of-range indexes to be rejected")
	}
	if !c.SetItem(0, true) || !c.SetItem(Total-1, true) {
		t.Fatalf("expected in-range writes to persist")
	}
	if !c.Item(0) || !c.Item(Total-1) {
		t.Fatalf("expected items to read back checked")
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()

	c := New(store.NewMemory())

	if got := c.Toggle(3); !got {
		t.Fatalf("expected first toggle to check")
	}
	if got := c.Toggle(3); got {
		t.Fatalf("expected second toggle to uncheck")
	}
}

func TestAllPassedAndCount(t *testing.T) {
	t.Parallel()

	c := New(store.NewMemory())

	for i := 0; i < Total-1; i++ {
		c.SetItem(i, true)
	}
	if c.AllPassed() {
		t.Fatalf("expected false with one item left")
	}
	if got := c.PassedCount(); got != Total-1 {
		t.Fatalf("expected %d passed, got %d", Total-1, got)
	}

	c.SetItem(Total-1, true)
	if !c.AllPassed() {
		t.Fatalf("expected true with every item checked")
	}

	c.Reset()
	if c.PassedCount() != 0 {
		t.Fatalf("expected reset to uncheck everything")
	}
}

func TestItemsShortOrMalformedStateDegrades(t *testing.T) {
	t.Parallel()

	kv := store.NewMemory()

	kv.Set(Key, "[true, true]")
	if got := New(kv).PassedCount(); got != 0 {
		t.Fatalf("expected short state to reset, got %d", got)
	}

	kv.Set(Key, "{broken")
	if got := New(kv).PassedCount(); got != 0 {
		t.Fatalf("expected malformed state to reset, got %d", got)
	}
}
