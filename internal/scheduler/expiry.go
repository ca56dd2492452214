package scheduler

import (
	"github.com/daysched/daysched/internal/scheduler/jobdb"
)

// FilterExpired partitions jobs into those still admissible as of today and a
// count of expired jobs. A job is admissible iff its deadline is today or later.
// The relative order of admissible jobs is preserved and no job is modified;
// expired jobs are discarded, only their count is reported.
func FilterExpired(jobs []*jobdb.Job, today int64) ([]*jobdb.Job, int) {
	valid := make([]*jobdb.Job, 0, len(jobs))
	for _, job := range jobs {
		if !job.Expired(today) {
			valid = append(valid, job)
		}
	}
	return valid, len(jobs) - len(valid)
}
