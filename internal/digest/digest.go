// Package digest derives the daily top-10 job ranking and caches it per
// local calendar day. Once a non-empty digest is stored for a day it is
// immutable: later reads that day return it verbatim even if the
// preference profile has changed in the meantime.
package digest

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/anuragpatil2882004-ui/job-traking/internal/jobs"
	"github.com/anuragpatil2882004-ui/job-traking/internal/matching"
	"github.com/anuragpatil2882004-ui/job-traking/internal/preferences"
	"github.com/anuragpatil2882004-ui/job-traking/internal/store"
)

// KeyPrefix prefixes the per-day store keys, e.g.
// "jobTrackerDigest_2026-09-01".
const KeyPrefix = "jobTrackerDigest_"

// Size is the maximum number of jobs in a digest.
const Size = 10

// ErrNoPreferences signals that no preference profile is stored. It is
// an expected outcome, not a failure: the caller should point the user
// at the settings flow instead of logging an error.
var ErrNoPreferences = errors.New("no preference profile configured")

// Generate scores every job and returns the top Size of them, ranked by
// match score descending with lower postedDaysAgo winning ties (absent
// treated as 0). The sort is stable, so listing order is the final
// tie-break. A nil profile yields ErrNoPreferences.
func Generate(list *jobs.Jobs, prefs *preferences.Profile) ([]jobs.Job, error) {
	if prefs == nil {
		return nil, ErrNoPreferences
	}

	scored := matching.ScoreAll(list, prefs)

	sort.SliceStable(scored, func(i, k int) bool {
		if scored[i].MatchScore != scored[k].MatchScore {
			return scored[i].MatchScore > scored[k].MatchScore
		}
		return scored[i].PostedDays() < scored[k].PostedDays()
	})

	if len(scored) > Size {
		scored = scored[:Size]
	}
	return scored, nil
}

// Engine manages the day-keyed digest cache on top of Generate.
type Engine struct {
	kv   store.Store
	list *jobs.Jobs
	prof *preferences.Service

	// Now supplies the clock used for day keys; overridable in tests to
	// simulate day boundaries.
	Now func() time.Time
}

func NewEngine(kv store.Store, list *jobs.Jobs, prof *preferences.Service) *Engine {
	return &Engine{kv: kv, list: list, prof: prof, Now: time.Now}
}

// TodayKey returns the store key for the current local calendar day.
func (e *Engine) TodayKey() string {
	return KeyPrefix + DayKey(e.Now())
}

// DayKey formats t's local calendar date as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DateLabel renders t as the human-readable digest date line.
func DateLabel(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// GetOrCreate returns today's digest, creating and caching it on the
// first call of the day. A cached non-empty digest is returned verbatim
// with fromCache true. An empty generation result is returned without
// caching, so the day stays retriable once jobs or preferences appear.
func (e *Engine) GetOrCreate() (list []jobs.Job, fromCache bool, err error) {
	key := e.TodayKey()

	if cached, ok := e.cached(key); ok && len(cached) > 0 {
		return cached, true, nil
	}

	generated, err := Generate(e.list, e.prof.Get())
	if err != nil {
		return nil, false, err
	}

	if len(generated) > 0 {
		e.persist(key, generated)
	}
	return generated, false, nil
}

// Today returns the digest cached for the current day, if any.
func (e *Engine) Today() ([]jobs.Job, bool) {
	cached, ok := e.cached(e.TodayKey())
	if !ok || len(cached) == 0 {
		return nil, false
	}
	return cached, true
}

func (e *Engine) cached(key string) ([]jobs.Job, bool) {
	raw, ok := e.kv.Get(key)
	if !ok {
		return nil, false
	}

	var cached []jobs.Job
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil, false
	}
	return cached, true
}

func (e *Engine) persist(key string, list []jobs.Job) bool {
	data, err := json.Marshal(list)
	if err != nil {
		return false
	}
	return e.kv.Set(key, string(data))
}

// FormatPlainText renders the digest for clipboard and email export.
// The output is byte-stable for identical input.
func FormatPlainText(list []jobs.Job, dateLabel string) string {
	lines := []string{"Top 10 Jobs For You — 9AM Digest", dateLabel, ""}
	if len(list) == 0 {
		return strings.Join(lines, "\n")
	}

	for i, job := range list {
		lines = append(lines,
			fmt.Sprintf("%d. %s at %s", i+1, job.Title, job.Company),
			fmt.Sprintf("   Location: %s | Experience: %s | Match: %d%%", job.Location, job.Experience, job.MatchScore),
			fmt.Sprintf("   Apply: %s", job.ApplyURL),
			"",
		)
	}

	lines = append(lines, "This digest was generated based on your preferences.")
	return strings.Join(lines, "\n")
}
