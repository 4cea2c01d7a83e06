package status

import (
	"fmt"
	"testing"
	"time"

	"github.com/anuragpatil2882004-ui/job-traking/internal/jobs"
	"github.com/anuragpatil2882004-ui/job-traking/internal/store"
)

func newTestTracker() *Tracker {
	tracker := NewTracker(store.NewMemory())
	tracker.Now = func() time.Time {
		return time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	}
	return tracker
}

func TestParse(t *testing.T) {
	t.Parallel()

	for _, s := range All() {
		parsed, err := Parse(string(s))
		if err != nil || parsed != s {
			t.Fatalf("expected %q to parse, got %q err=%v", s, parsed, err)
		}
	}

	if _, err := Parse("Interviewing"); err == nil {
		t.Fatalf("expected unknown status to fail")
	}
}

func TestGetDefaultsToNotApplied(t *testing.T) {
	t.Parallel()

	tracker := newTestTracker()

	if got := tracker.Get("missing"); got != NotApplied {
		t.Fatalf("expected NotApplied for an untracked job, got %q", got)
	}
}

func TestSetAndGet(t *testing.T) {
	t.Parallel()

	tracker := newTestTracker()

	if !tracker.Set("1", Applied) {
		t.Fatalf("expected write to persist")
	}
	if got := tracker.Get("1"); got != Applied {
		t.Fatalf("expected Applied, got %q", got)
	}

	tracker.Set("1", NotApplied)
	if got := tracker.Get("1"); got != NotApplied {
		t.Fatalf("expected reset to NotApplied, got %q", got)
	}
}

func TestRecordLogsOnlyTrackedStatuses(t *testing.T) {
	t.Parallel()

	tracker := newTestTracker()
	job := jobs.Job{ID: "1", Title: "Backend Engineer", Company: "Acme"}

	tracker.Record(job, Applied)
	tracker.Record(job, NotApplied)
	tracker.Record(job, Rejected)

	updates := tracker.Updates()
	if len(updates) != 2 {
		t.Fatalf("expected 2 events, got %d", len(updates))
	}
	if updates[0].Status != Applied || updates[1].Status != Rejected {
		t.Fatalf("unexpected event statuses: %v", updates)
	}
	if updates[0].Title != "Backend Engineer" || updates[0].Company != "Acme" {
		t.Fatalf("event is missing job details: %+v", updates[0])
	}
	if updates[0].DateChanged != "2026-09-01T09:00:00Z" {
		t.Fatalf("unexpected timestamp: %s", updates[0].DateChanged)
	}
}

func TestUpdatesLogCap(t *testing.T) {
	t.Parallel()

	tracker := newTestTracker()

	for i := 0; i < 60; i++ {
		tracker.AddUpdate(fmt.Sprintf("job-%d", i), "Title", "Company", Applied)
	}

	updates := tracker.Updates()
	if len(updates) != MaxUpdates {
		t.Fatalf("expected %d events, got %d", MaxUpdates, len(updates))
	}

	// Oldest dropped first, survivors keep oldest-first order.
	if updates[0].JobID != "job-10" {
		t.Fatalf("expected oldest survivor job-10, got %s", updates[0].JobID)
	}
	if updates[len(updates)-1].JobID != "job-59" {
		t.Fatalf("expected newest job-59, got %s", updates[len(updates)-1].JobID)
	}
}

func TestRecentNewestFirst(t *testing.T) {
	t.Parallel()

	tracker := newTestTracker()
	for i := 0; i < 5; i++ {
		tracker.AddUpdate(fmt.Sprintf("job-%d", i), "Title", "Company", Selected)
	}

	recent := tracker.Recent(3)
	if len(recent) != 3 {
		t.Fatalf("expected 3 events, got %d", len(recent))
	}
	for i, want := range []string{"job-4", "job-3", "job-2"} {
		if recent[i].JobID != want {
			t.Fatalf("expected %s at %d, got %s", want, i, recent[i].JobID)
		}
	}
}

func TestMapSurvivesMalformedState(t *testing.T) {
	t.Parallel()

	kv := store.NewMemory()
	kv.Set(MapKey, "{not json")
	kv.Set(UpdatesKey, "[broken")

	tracker := NewTracker(kv)

	if got := tracker.Get("1"); got != NotApplied {
		t.Fatalf("expected NotApplied on malformed state, got %q", got)
	}
	if got := tracker.Updates(); len(got) != 0 {
		t.Fatalf("expected empty updates on malformed state, got %d", len(got))
	}
}
