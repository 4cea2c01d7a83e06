// Package filtering narrows a scored job list step by step before
// display. Each step reports how many jobs it dropped so the run can be
// followed in the logs.
package filtering

import (
	"go.uber.org/zap"

	"github.com/anuragpatil2882004-ui/job-traking/internal/jobs"
)

// Filter represents a single narrowing step applied to a job list.
type Filter interface {
	Name() string
	Apply(items []jobs.Job) ([]jobs.Job, Step)
}

// Step describes the result of executing one filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Run executes the supplied filters sequentially, logging each step.
func Run(logger *zap.Logger, steps []Filter, items []jobs.Job) []jobs.Job {
	for _, step := range steps {
		next, info := step.Apply(items)

		if logger != nil {
			logger.Debug("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		items = next
	}
	return items
}

// keep retains the jobs matching the predicate, preserving order.
func keep(items []jobs.Job, pred func(jobs.Job) bool) ([]jobs.Job, Step) {
	initial := len(items)
	out := make([]jobs.Job, 0, initial)
	for _, job := range items {
		if pred(job) {
			out = append(out, job)
		}
	}
	return out, Step{Initial: initial, Dropped: initial - len(out), Left: len(out)}
}
