// Package jobs defines the job listing records consumed by the scoring
// and digest engines. Listings are supplied as a static JSON file at
// startup; the tracker never fetches them from anywhere.
package jobs

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ID is an opaque job identifier. Listing feeds are inconsistent about
// the JSON type, so both "42" and 42 decode to the same ID.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ID(n.String())
		return nil
	}

	return fmt.Errorf("job id must be a string or a number, got %s", string(data))
}

func (id ID) String() string { return string(id) }

// Job is a single listing. Every field except ID may be absent in the
// feed; scoring treats absent fields as "does not satisfy the rule".
type Job struct {
	ID            ID       `json:"id"`
	Title         string   `json:"title,omitempty"`
	Company       string   `json:"company,omitempty"`
	Location      string   `json:"location,omitempty"`
	Mode          string   `json:"mode,omitempty"`
	Experience    string   `json:"experience,omitempty"`
	Source        string   `json:"source,omitempty"`
	Description   string   `json:"description,omitempty"`
	Skills        []string `json:"skills,omitempty"`
	PostedDaysAgo *int     `json:"postedDaysAgo,omitempty"`
	SalaryRange   string   `json:"salaryRange,omitempty"`
	ApplyURL      string   `json:"applyUrl,omitempty"`

	// MatchScore is set only on derived copies produced by the scoring
	// engine. It is never part of the input feed.
	MatchScore int `json:"matchScore,omitempty"`
}

// PostedDays returns the listing age in days, treating an absent value
// as 0. Use the pointer directly when "absent" must stay distinguishable.
func (j Job) PostedDays() int {
	if j.PostedDaysAgo == nil {
		return 0
	}
	return *j.PostedDaysAgo
}

// PostedLabel renders the listing age for display.
func (j Job) PostedLabel() string {
	days := j.PostedDays()
	switch days {
	case 0:
		return "Today"
	case 1:
		return "1 day ago"
	default:
		return strconv.Itoa(days) + " days ago"
	}
}

// Jobs is the full listing collection for one session.
type Jobs struct {
	Items []Job
}

// Load reads a JSON array of jobs from path.
func Load(path string) (*Jobs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading jobs file %q: %w", path, err)
	}

	var items []Job
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing jobs file %q: %w", path, err)
	}

	return &Jobs{Items: items}, nil
}

func (j *Jobs) Len() int {
	if j == nil {
		return 0
	}
	return len(j.Items)
}

// FindByID returns the job with the given id, or nil.
func (j *Jobs) FindByID(id string) *Job {
	for i := range j.Items {
		if string(j.Items[i].ID) == id {
			return &j.Items[i]
		}
	}
	return nil
}

// Titles returns "Title at Company" labels in listing order, used by
// interactive selection prompts.
func (j *Jobs) Titles() []string {
	labels := make([]string, 0, len(j.Items))
	for _, job := range j.Items {
		labels = append(labels, fmt.Sprintf("%s %s at %s", job.ID, job.Title, job.Company))
	}
	return labels
}

// Filter returns the jobs for which keep returns true, preserving order.
func (j *Jobs) Filter(keep func(Job) bool) []Job {
	out := make([]Job, 0, len(j.Items))
	for _, job := range j.Items {
		if keep(job) {
			out = append(out, job)
		}
	}
	return out
}

// Meta joins the non-empty location, mode and experience fields for
// one-line display.
func (j Job) Meta() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{j.Location, j.Mode, j.Experience} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " · ")
}
