package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/daysched/daysched/internal/scheduler/jobdb"
)

func TestScheduler_SubmitJobAssignsMonotonicIds(t *testing.T) {
	s := NewScheduler(nil)

	seen := map[int64]bool{}
	var previous int64
	for i := 0; i < 100; i++ {
		job := s.SubmitJob(int64(i%7), int64(i%3))
		require.Greater(t, job.Id(), previous)
		require.False(t, seen[job.Id()])
		seen[job.Id()] = true
		previous = job.Id()
	}
	assert.Equal(t, 100, s.BacklogSize())
}

func TestScheduler_IdsNotReusedAcrossCycles(t *testing.T) {
	s := NewScheduler(nil)
	first := s.SubmitJob(1, 1)
	s.RunCycle(1, 10)
	require.Equal(t, 0, s.BacklogSize())

	second := s.SubmitJob(1, 2)
	assert.Greater(t, second.Id(), first.Id())
}

func TestScheduler_RunCycle(t *testing.T) {
	s := NewScheduler(nil)
	s.SubmitJob(5, 3)
	s.SubmitJob(2, 3)
	s.SubmitJob(9, 1)

	report := s.RunCycle(1, 2)

	assert.Equal(t, int64(1), report.Day)
	assert.Equal(t, []int64{3, 2}, jobIds(report.ExecutedJobs))
	assert.Equal(t, int64(11), report.TotalComputeExecuted)
	assert.Equal(t, 0, report.ExpiredCount)
	assert.Equal(t, []int64{1}, jobIds(report.RemainingBacklog))
	assert.Equal(t, 1, report.RemainingBacklogSize())
	assert.Equal(t, 1, s.BacklogSize())
}

func TestScheduler_RunCycle_ExpiredJobsAreDiscarded(t *testing.T) {
	s := NewScheduler(nil)
	s.SubmitJob(4, 0)

	report := s.RunCycle(1, 5)

	assert.Empty(t, report.ExecutedJobs)
	assert.Equal(t, 1, report.ExpiredCount)
	assert.Equal(t, 0, report.RemainingBacklogSize())
	assert.Equal(t, int64(0), report.TotalComputeExecuted)
}

func TestScheduler_RunCycle_TieBreakOnComputeCost(t *testing.T) {
	s := NewScheduler(nil)
	s.SubmitJob(5, 2)
	s.SubmitJob(3, 2)

	report := s.RunCycle(0, 1)

	require.Equal(t, []int64{2}, jobIds(report.ExecutedJobs))
	assert.Equal(t, int64(3), report.TotalComputeExecuted)
	assert.Equal(t, []int64{1}, jobIds(report.RemainingBacklog))
}

func TestScheduler_RunCycle_ZeroCapacity(t *testing.T) {
	s := NewScheduler(nil)
	s.SubmitJob(5, 3)
	s.SubmitJob(2, 3)

	report := s.RunCycle(1, 0)

	assert.Empty(t, report.ExecutedJobs)
	assert.Equal(t, 2, report.RemainingBacklogSize())
}

// A job submitted on an earlier day must be evaluated against the day the
// cycle runs on, not the day it arrived.
func TestScheduler_BacklogCarriedAcrossCycles(t *testing.T) {
	s := NewScheduler(nil)

	// Day 1: three jobs, room for one.
	s.SubmitJob(5, 3) // id 1
	s.SubmitJob(2, 2) // id 2
	s.SubmitJob(9, 1) // id 3
	report := s.RunCycle(1, 1)
	require.Equal(t, []int64{3}, jobIds(report.ExecutedJobs))
	require.Equal(t, []int64{2, 1}, jobIds(report.RemainingBacklog))

	// Day 2: one new arrival; job 2 is due today and most urgent.
	s.SubmitJob(1, 2) // id 4
	report = s.RunCycle(2, 1)
	require.Equal(t, []int64{4}, jobIds(report.ExecutedJobs))
	require.Equal(t, 0, report.ExpiredCount)
	require.Equal(t, []int64{2, 1}, jobIds(report.RemainingBacklog))

	// Day 3: job 2 missed its deadline and expires; job 1 is due today.
	report = s.RunCycle(3, 1)
	require.Equal(t, []int64{1}, jobIds(report.ExecutedJobs))
	require.Equal(t, 1, report.ExpiredCount)
	require.Equal(t, 0, report.RemainingBacklogSize())
}

// Every job submitted must end a cycle in exactly one of executed, remaining
// backlog or expired.
func TestScheduler_ConservationAcrossCycle(t *testing.T) {
	s := NewScheduler(nil)
	submitted := map[int64]bool{}
	for i := 0; i < 20; i++ {
		job := s.SubmitJob(int64(i%5), int64(i%4))
		submitted[job.Id()] = true
	}

	report := s.RunCycle(2, 7)

	accountedFor := report.ExecutedCount() + report.RemainingBacklogSize() + report.ExpiredCount
	assert.Equal(t, len(submitted), accountedFor)
	for _, job := range append(report.ExecutedJobs, report.RemainingBacklog...) {
		assert.True(t, submitted[job.Id()])
	}
}

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler(nil)

	report := s.RunOnce(
		[]JobSpec{
			{ComputeCost: 5, Deadline: 3},
			{ComputeCost: 2, Deadline: 3},
			{ComputeCost: 9, Deadline: 1},
		},
		1,
		2,
	)

	assert.Equal(t, []int64{3, 2}, jobIds(report.ExecutedJobs))
	assert.Equal(t, int64(11), report.TotalComputeExecuted)
	assert.Equal(t, 0, report.ExpiredCount)
	assert.Equal(t, []int64{1}, jobIds(report.RemainingBacklog))
}

func TestScheduler_ReportsAreSnapshots(t *testing.T) {
	s := NewScheduler(nil)
	s.SubmitJob(1, 5)
	s.SubmitJob(2, 5)
	first := s.RunCycle(1, 1)

	// Later cycles must not disturb an earlier report.
	s.RunCycle(2, 1)
	assert.Equal(t, []int64{1}, jobIds(first.ExecutedJobs))
	assert.Equal(t, []int64{2}, jobIds(first.RemainingBacklog))
}

func TestScheduler_CycleTimingUsesInjectedClock(t *testing.T) {
	s := NewScheduler(nil)
	fakeClock := testingclock.NewFakePassiveClock(time.Now())
	s.clock = fakeClock

	s.SubmitJob(1, 1)
	report := s.RunCycle(1, 1)
	assert.Equal(t, 1, report.ExecutedCount())
}

func TestScheduler_JobFieldsPreserved(t *testing.T) {
	s := NewScheduler(nil)
	job := s.SubmitJob(42, 7)
	report := s.RunCycle(1, 1)

	require.Equal(t, 1, report.ExecutedCount())
	executed := report.ExecutedJobs[0]
	assert.Same(t, job, executed)
	assert.Equal(t, jobdb.NewJob(1, 42, 7), executed)
}
