package scheduler

import (
	log "github.com/sirupsen/logrus"
	"k8s.io/utils/clock"

	"github.com/daysched/daysched/internal/scheduler/jobdb"
)

// JobSpec describes a job to be submitted: everything a job carries except its id.
type JobSpec struct {
	ComputeCost int64
	Deadline    int64
}

// Scheduler owns the backlog of pending jobs and drives scheduling cycles over it.
// Each cycle discards expired jobs, orders the remainder by urgency, admits up to
// a given capacity and carries the rest over as the next cycle's backlog.
//
// The Scheduler is not safe for concurrent use. The backlog is owned exclusively
// by the Scheduler; cycles run strictly sequentially and callers only ever see
// snapshots of it via CycleReport.
type Scheduler struct {
	// Jobs awaiting admission, carried across cycles.
	backlog []*jobdb.Job
	// Id assigned to the next submitted job. Ids increase monotonically over
	// the lifetime of the process and are never reused.
	nextJobId int64
	// Reports per-cycle outcomes. May be nil, in which case nothing is reported.
	metrics *Metrics
	// Used for all timing decisions. Injected so that tests can mock it out.
	clock clock.PassiveClock
}

func NewScheduler(metrics *Metrics) *Scheduler {
	return &Scheduler{
		backlog:   nil,
		nextJobId: 1,
		metrics:   metrics,
		clock:     clock.RealClock{},
	}
}

// SubmitJob creates a job with the next id and appends it to the backlog.
// Compute cost must be non-negative; the I/O layer validates this before
// calling into the scheduler.
func (s *Scheduler) SubmitJob(computeCost int64, deadline int64) *jobdb.Job {
	job := jobdb.NewJob(s.nextJobId, computeCost, deadline)
	s.nextJobId++
	s.backlog = append(s.backlog, job)
	return job
}

// BacklogSize returns the number of jobs currently awaiting admission.
func (s *Scheduler) BacklogSize() int {
	return len(s.backlog)
}

// RunCycle runs a single scheduling cycle against the current backlog:
// expired jobs are discarded, the remainder is sorted into scheduling order,
// up to capacity jobs are admitted and the rest become the new backlog.
// Jobs for the cycle must have been submitted beforehand via SubmitJob;
// capacity must be non-negative.
//
// Each phase completes before the next observes its output, so no phase ever
// sees partially updated state.
func (s *Scheduler) RunCycle(today int64, capacity int) *CycleReport {
	start := s.clock.Now()

	valid, expiredCount := FilterExpired(s.backlog, today)
	sorted := SortJobs(valid)
	result := Admit(sorted, capacity)
	s.backlog = result.Remaining

	report := &CycleReport{
		Day:                  today,
		ExecutedJobs:         result.Executed,
		TotalComputeExecuted: result.TotalComputeExecuted,
		ExpiredCount:         expiredCount,
		RemainingBacklog:     result.Remaining,
	}

	taken := s.clock.Since(start)
	log.WithField("day", today).Infof(
		"Completed scheduling cycle in %s: %d executed, %d expired, %d backlogged",
		taken, report.ExecutedCount(), report.ExpiredCount, report.RemainingBacklogSize())
	if s.metrics != nil {
		s.metrics.ReportCycle(report, taken)
	}
	return report
}

// RunOnce submits the given jobs and immediately runs a single cycle on them.
// It is a convenience for single-pass callers that have no backlog to carry.
func (s *Scheduler) RunOnce(specs []JobSpec, today int64, capacity int) *CycleReport {
	for _, spec := range specs {
		s.SubmitJob(spec.ComputeCost, spec.Deadline)
	}
	return s.RunCycle(today, capacity)
}
