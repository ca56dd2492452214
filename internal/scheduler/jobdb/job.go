package jobdb

import "fmt"

// Job is the scheduler-internal representation of a batch job.
// Jobs are immutable once created; the only thing that changes over a job's
// lifetime is whether the backlog still contains it.
type Job struct {
	// Monotonically increasing id assigned at submission time.
	// Ids are unique for the lifetime of the process and are never reused.
	id int64
	// Resource units required to execute the job.
	computeCost int64
	// Day by which the job must be admitted. Jobs with deadline earlier
	// than the current day are expired and discarded.
	deadline int64
}

// NewJob creates a new job. Callers are responsible for assigning ids in
// submission order; the scheduler's ingestion path is the only place that does so.
func NewJob(id int64, computeCost int64, deadline int64) *Job {
	return &Job{
		id:          id,
		computeCost: computeCost,
		deadline:    deadline,
	}
}

// Id returns the id of the job.
func (job *Job) Id() int64 {
	return job.id
}

// ComputeCost returns the resource units required to execute the job.
func (job *Job) ComputeCost() int64 {
	return job.computeCost
}

// Deadline returns the day by which the job must be admitted.
func (job *Job) Deadline() int64 {
	return job.deadline
}

// Expired returns true if the job can no longer be admitted as of today.
func (job *Job) Expired(today int64) bool {
	return job.deadline < today
}

func (job *Job) String() string {
	return fmt.Sprintf("Job %d | Compute: %d | Deadline: %d", job.id, job.computeCost, job.deadline)
}
