package jobs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestIDAcceptsStringAndNumber(t *testing.T) {
	t.Parallel()

	var job Job
	if err := json.Unmarshal([]byte(`{"id": 42, "title": "Engineer"}`), &job); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.ID != "42" {
		t.Fatalf("expected numeric id to decode as %q, got %q", "42", job.ID)
	}

	if err := json.Unmarshal([]byte(`{"id": "abc"}`), &job); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.ID != "abc" {
		t.Fatalf("expected string id, got %q", job.ID)
	}

	if err := json.Unmarshal([]byte(`{"id": true}`), &job); err == nil {
		t.Fatalf("expected a boolean id to fail")
	}
}

func TestPostedLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		days   *int
		expect string
	}{
		{name: "absent is today", days: nil, expect: "Today"},
		{name: "zero is today", days: intPtr(0), expect: "Today"},
		{name: "one day", days: intPtr(1), expect: "1 day ago"},
		{name: "many days", days: intPtr(7), expect: "7 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			job := Job{PostedDaysAgo: tt.days}
			if got := job.PostedLabel(); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "jobs.json")
	feed := `[
		{"id": 1, "title": "Backend Engineer", "company": "Acme", "skills": ["Go", "SQL"], "postedDaysAgo": 1},
		{"id": "ext-2", "title": "Designer", "company": "Globex"}
	]`
	if err := os.WriteFile(path, []byte(feed), 0o644); err != nil {
		t.Fatalf("writing feed: %v", err)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Len() != 2 {
		t.Fatalf("expected 2 jobs, got %d", list.Len())
	}

	job := list.FindByID("1")
	if job == nil || job.Title != "Backend Engineer" {
		t.Fatalf("expected to find job 1, got %+v", job)
	}
	if job.PostedDaysAgo == nil || *job.PostedDaysAgo != 1 {
		t.Fatalf("expected postedDaysAgo 1, got %v", job.PostedDaysAgo)
	}

	second := list.FindByID("ext-2")
	if second == nil || second.PostedDaysAgo != nil {
		t.Fatalf("expected job ext-2 with absent posting age, got %+v", second)
	}

	if list.FindByID("nope") != nil {
		t.Fatalf("expected nil for unknown id")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected an error for a missing feed")
	}
}

func TestMeta(t *testing.T) {
	t.Parallel()

	job := Job{Location: "Remote", Experience: "Mid"}
	if got := job.Meta(); got != "Remote · Mid" {
		t.Fatalf("unexpected meta: %q", got)
	}

	if got := (Job{}).Meta(); got != "" {
		t.Fatalf("expected empty meta, got %q", got)
	}
}

func intPtr(n int) *int { return &n }
