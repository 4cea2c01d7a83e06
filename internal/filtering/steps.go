package filtering

import (
	"strings"

	"github.com/anuragpatil2882004-ui/job-traking/internal/jobs"
	"github.com/anuragpatil2882004-ui/job-traking/internal/saved"
	"github.com/anuragpatil2882004-ui/job-traking/internal/status"
)

type thresholdFilter struct {
	min int
}

// NewThreshold creates a filter that drops jobs scoring below min.
func NewThreshold(min int) Filter {
	return &thresholdFilter{min: min}
}

func (f *thresholdFilter) Name() string { return "threshold" }

func (f *thresholdFilter) Apply(items []jobs.Job) ([]jobs.Job, Step) {
	if f.min <= 0 {
		return items, Step{Initial: len(items), Left: len(items)}
	}
	return keep(items, func(j jobs.Job) bool {
		return j.MatchScore >= f.min
	})
}

type locationFilter struct {
	location string
}

// NewLocation creates a filter that keeps jobs with an exact location.
func NewLocation(location string) Filter {
	return &locationFilter{location: location}
}

func (f *locationFilter) Name() string { return "location" }

func (f *locationFilter) Apply(items []jobs.Job) ([]jobs.Job, Step) {
	if f.location == "" {
		return items, Step{Initial: len(items), Left: len(items)}
	}
	return keep(items, func(j jobs.Job) bool {
		return j.Location == f.location
	})
}

type modeFilter struct {
	mode string
}

// NewMode creates a filter that keeps jobs with an exact work mode.
func NewMode(mode string) Filter {
	return &modeFilter{mode: mode}
}

func (f *modeFilter) Name() string { return "mode" }

func (f *modeFilter) Apply(items []jobs.Job) ([]jobs.Job, Step) {
	if f.mode == "" {
		return items, Step{Initial: len(items), Left: len(items)}
	}
	return keep(items, func(j jobs.Job) bool {
		return j.Mode == f.mode
	})
}

type queryFilter struct {
	query string
}

// NewQuery creates a filter that keeps jobs whose title or company
// contains the query, case-insensitively.
func NewQuery(query string) Filter {
	return &queryFilter{query: strings.ToLower(strings.TrimSpace(query))}
}

func (f *queryFilter) Name() string { return "query" }

func (f *queryFilter) Apply(items []jobs.Job) ([]jobs.Job, Step) {
	if f.query == "" {
		return items, Step{Initial: len(items), Left: len(items)}
	}
	return keep(items, func(j jobs.Job) bool {
		return strings.Contains(strings.ToLower(j.Title), f.query) ||
			strings.Contains(strings.ToLower(j.Company), f.query)
	})
}

type savedOnlyFilter struct {
	list *saved.List
}

// NewSavedOnly creates a filter that keeps bookmarked jobs only.
func NewSavedOnly(list *saved.List) Filter {
	return &savedOnlyFilter{list: list}
}

func (f *savedOnlyFilter) Name() string { return "saved_only" }

func (f *savedOnlyFilter) Apply(items []jobs.Job) ([]jobs.Job, Step) {
	if f.list == nil {
		return items, Step{Initial: len(items), Left: len(items)}
	}
	return keep(items, func(j jobs.Job) bool {
		return f.list.IsSaved(string(j.ID))
	})
}

type statusFilter struct {
	tracker *status.Tracker
	want    status.Status
}

// NewStatus creates a filter that keeps jobs in the given application
// status.
func NewStatus(tracker *status.Tracker, want status.Status) Filter {
	return &statusFilter{tracker: tracker, want: want}
}

func (f *statusFilter) Name() string { return "status" }

func (f *statusFilter) Apply(items []jobs.Job) ([]jobs.Job, Step) {
	if f.tracker == nil || f.want == "" {
		return items, Step{Initial: len(items), Left: len(items)}
	}
	return keep(items, func(j jobs.Job) bool {
		return f.tracker.Get(string(j.ID)) == f.want
	})
}
