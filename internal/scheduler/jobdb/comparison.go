package jobdb

type JobPriorityComparer struct{}

func (JobPriorityComparer) Compare(job, other *Job) int {
	return SchedulingOrderCompare(job, other)
}

// SchedulingOrderCompare defines the order in which backlogged jobs are admitted.
// Specifically, compare returns
//   - -1 if job should be admitted before other,
//   - +1 if other should be admitted before job,
//   - 0 if the jobs are tied on both keys.
//
// Jobs with earlier deadlines are more urgent and come first. Between jobs with
// equal deadlines, the one with the smaller compute cost comes first, so that a
// day's capacity clears as many deadline-critical jobs as possible.
//
// Jobs tied on both keys compare equal here; the sort is stable, so such jobs
// keep their submission order. Together with monotonic ids this makes the
// overall order deterministic for any given submission sequence.
func SchedulingOrderCompare(job, other *Job) int {
	if job.deadline < other.deadline {
		return -1
	} else if job.deadline > other.deadline {
		return 1
	}

	if job.computeCost < other.computeCost {
		return -1
	} else if job.computeCost > other.computeCost {
		return 1
	}

	return 0
}
