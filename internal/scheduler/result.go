package scheduler

import (
	"github.com/daysched/daysched/internal/scheduler/jobdb"
)

// CycleReport summarises a single scheduling cycle. It is the only output the
// scheduler produces; rendering and any further bookkeeping are up to the caller.
type CycleReport struct {
	// Day the cycle ran on.
	Day int64
	// Jobs admitted for execution this cycle, in scheduling order.
	ExecutedJobs []*jobdb.Job
	// Sum of the compute cost of all executed jobs.
	TotalComputeExecuted int64
	// Number of jobs discarded this cycle because their deadline had passed.
	// Expired jobs are counted but not reported individually.
	ExpiredCount int
	// Jobs carried over into the next cycle, in scheduling order.
	RemainingBacklog []*jobdb.Job
}

// ExecutedCount returns the number of jobs executed this cycle.
func (report *CycleReport) ExecutedCount() int {
	return len(report.ExecutedJobs)
}

// RemainingBacklogSize returns the size of the backlog at the end of the cycle.
func (report *CycleReport) RemainingBacklogSize() int {
	return len(report.RemainingBacklog)
}
