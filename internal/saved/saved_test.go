package saved

import (
	"testing"

	"github.com/anuragpatil2882004-ui/job-traking/internal/store"
)

func TestToggleSavesAndUnsaves(t *testing.T) {
	t.Parallel()

	list := NewList(store.NewMemory())

	if got := list.IDs(); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}

	list.Toggle("1")
	list.Toggle("2")
	if !list.IsSaved("1") || !list.IsSaved("2") {
		t.Fatalf("expected both jobs saved")
	}

	list.Toggle("1")
	if list.IsSaved("1") {
		t.Fatalf("expected job 1 unsaved after second toggle")
	}

	got := list.IDs()
	if len(got) != 1 || got[0] != "2" {
		t.Fatalf("expected [2], got %v", got)
	}
}

func TestIDsKeepSaveOrder(t *testing.T) {
	t.Parallel()

	list := NewList(store.NewMemory())
	for _, id := range []string{"c", "a", "b"} {
		list.Toggle(id)
	}

	got := list.IDs()
	for i, want := range []string{"c", "a", "b"} {
		if got[i] != want {
			t.Fatalf("expected save order preserved, got %v", got)
		}
	}
}

func TestIDsMalformedStateDegradesToEmpty(t *testing.T) {
	t.Parallel()

	kv := store.NewMemory()
	kv.Set(Key, "[broken")

	list := NewList(kv)
	if got := list.IDs(); len(got) != 0 {
		t.Fatalf("expected empty list on malformed state, got %v", got)
	}
}
