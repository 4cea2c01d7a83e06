// Package status tracks per-job application state and keeps a capped
// log of status-change events.
//
// A job is in exactly one of four states:
//
//	Not Applied ──► Applied
//	     │             │
//	     └──► Rejected / Selected (any state may move to any other)
//
// Unlike a kanban board there is no forbidden transition; the user is
// free to correct mistakes. Only moves into Applied, Rejected or
// Selected are logged; resetting to Not Applied leaves no event.
package status

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/anuragpatil2882004-ui/job-traking/internal/jobs"
	"github.com/anuragpatil2882004-ui/job-traking/internal/store"
)

const (
	// MapKey holds the jobId→status map.
	MapKey = "jobTrackerStatus"
	// UpdatesKey holds the append-only event log, oldest-first.
	UpdatesKey = "jobTrackerStatusUpdates"
	// MaxUpdates caps the event log; oldest entries drop first.
	MaxUpdates = 50
	// DefaultRecentLimit is used when Recent is called with limit <= 0.
	DefaultRecentLimit = 20
)

// Status is one application state.
type Status string

const (
	NotApplied Status = "Not Applied"
	Applied    Status = "Applied"
	Rejected   Status = "Rejected"
	Selected   Status = "Selected"
)

// Parse converts a raw string to a Status, returning an error for
// unknown values.
func Parse(s string) (Status, error) {
	st := Status(s)
	switch st {
	case NotApplied, Applied, Rejected, Selected:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// All lists every status in display order.
func All() []Status {
	return []Status{NotApplied, Applied, Rejected, Selected}
}

// Logged reports whether a move into s is recorded in the event log.
func (s Status) Logged() bool {
	return s == Applied || s == Rejected || s == Selected
}

// UpdateEvent is one logged status change.
type UpdateEvent struct {
	JobID       string `json:"jobId"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Status      Status `json:"status"`
	DateChanged string `json:"dateChanged"`
}

// Tracker reads and writes status state through a Store.
type Tracker struct {
	kv store.Store

	// Now supplies event timestamps; overridable in tests.
	Now func() time.Time
}

func NewTracker(kv store.Store) *Tracker {
	return &Tracker{kv: kv, Now: time.Now}
}

// Get returns the status for jobID, defaulting to NotApplied for absent
// or unrecognized entries.
func (t *Tracker) Get(jobID string) Status {
	raw := t.Map()[jobID]
	if st, err := Parse(raw); err == nil && st != "" {
		return st
	}
	return NotApplied
}

// Map returns the full jobId→status map as stored. Malformed or absent
// state yields an empty map.
func (t *Tracker) Map() map[string]string {
	raw, ok := t.kv.Get(MapKey)
	if !ok {
		return map[string]string{}
	}

	m := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return map[string]string{}
	}
	return m
}

// Set stores the status for jobID, reporting whether the write persisted.
func (t *Tracker) Set(jobID string, s Status) bool {
	m := t.Map()
	m[jobID] = string(s)

	data, err := json.Marshal(m)
	if err != nil {
		return false
	}
	return t.kv.Set(MapKey, string(data))
}

// Record sets the job's status and, for statuses that are logged,
// appends an event. It reports whether the status write persisted.
func (t *Tracker) Record(job jobs.Job, s Status) bool {
	ok := t.Set(string(job.ID), s)
	if ok && s.Logged() {
		t.AddUpdate(string(job.ID), job.Title, job.Company, s)
	}
	return ok
}

// Updates returns the event log, oldest-first.
func (t *Tracker) Updates() []UpdateEvent {
	raw, ok := t.kv.Get(UpdatesKey)
	if !ok {
		return []UpdateEvent{}
	}

	var list []UpdateEvent
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return []UpdateEvent{}
	}
	return list
}

// AddUpdate appends an event for jobID, dropping the oldest entries once
// the log exceeds MaxUpdates.
func (t *Tracker) AddUpdate(jobID, title, company string, s Status) bool {
	list := t.Updates()
	list = append(list, UpdateEvent{
		JobID:       jobID,
		Title:       title,
		Company:     company,
		Status:      s,
		DateChanged: t.Now().UTC().Format(time.RFC3339),
	})
	if len(list) > MaxUpdates {
		list = list[len(list)-MaxUpdates:]
	}

	data, err := json.Marshal(list)
	if err != nil {
		return false
	}
	return t.kv.Set(UpdatesKey, string(data))
}

// Recent returns up to limit events, newest-first. A non-positive limit
// falls back to DefaultRecentLimit.
func (t *Tracker) Recent(limit int) []UpdateEvent {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	list := t.Updates()
	if len(list) > limit {
		list = list[len(list)-limit:]
	}

	out := make([]UpdateEvent, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		out = append(out, list[i])
	}
	return out
}
