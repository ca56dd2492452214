package scheduler

import (
	goslices "golang.org/x/exp/slices"

	"github.com/daysched/daysched/internal/scheduler/jobdb"
)

// SortJobs returns a new slice containing jobs in scheduling order, i.e.,
// the order defined by jobdb.SchedulingOrderCompare. The input is not modified.
//
// The sort is a recursive merge sort: the comparator is applied to each
// pairwise comparison during the merge, and the left run wins ties, which
// makes the sort stable. Fully tied jobs therefore keep their submission order.
func SortJobs(jobs []*jobdb.Job) []*jobdb.Job {
	if len(jobs) <= 1 {
		return goslices.Clone(jobs)
	}
	mid := len(jobs) / 2
	return merge(SortJobs(jobs[:mid]), SortJobs(jobs[mid:]))
}

// merge interleaves two runs already in scheduling order into a single run.
func merge(left, right []*jobdb.Job) []*jobdb.Job {
	merged := make([]*jobdb.Job, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if jobdb.SchedulingOrderCompare(left[i], right[j]) <= 0 {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}
	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)
	return merged
}
