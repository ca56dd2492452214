package scheduler

import (
	goslices "golang.org/x/exp/slices"

	"github.com/daysched/daysched/internal/common/slices"
	"github.com/daysched/daysched/internal/scheduler/jobdb"
)

// AdmissionResult is the outcome of admitting jobs against a day's capacity.
type AdmissionResult struct {
	// Jobs admitted for execution, in scheduling order.
	Executed []*jobdb.Job
	// Jobs that did not fit within capacity, in scheduling order.
	// These form the backlog carried into the next cycle.
	Remaining []*jobdb.Job
	// Sum of the compute cost of all executed jobs.
	TotalComputeExecuted int64
}

// Admit selects the first min(capacity, len(orderedJobs)) jobs for execution.
// orderedJobs must already be in scheduling order; capacity must be non-negative
// (the I/O layer validates this before calling into the scheduler).
// Capacity zero admits nothing; capacity in excess of the backlog admits everything.
func Admit(orderedJobs []*jobdb.Job, capacity int) AdmissionResult {
	n := capacity
	if n > len(orderedJobs) {
		n = len(orderedJobs)
	}
	executed := goslices.Clone(orderedJobs[:n])
	return AdmissionResult{
		Executed:  executed,
		Remaining: goslices.Clone(orderedJobs[n:]),
		TotalComputeExecuted: slices.Sum(
			slices.Map(executed, func(job *jobdb.Job) int64 { return job.ComputeCost() }),
		),
	}
}
