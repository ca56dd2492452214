package scheduler

import (
	"fmt"

	"github.com/daysched/daysched/internal/common/util"
	"github.com/daysched/daysched/internal/scheduler/jobdb"
)

// FormatReport renders a cycle report as aligned text for the console.
func FormatReport(report *CycleReport) string {
	sb := util.NewTabbedStringBuilder(1, 1, 1, ' ', 0)
	writeJobTable(sb, "Executed Jobs", report.ExecutedJobs)
	writeJobTable(sb, "Remaining Backlog", report.RemainingBacklog)
	sb.Writef("\nTotal Compute Today:\t%d\n", report.TotalComputeExecuted)
	sb.Writef("Expired Jobs Today:\t%d\n", report.ExpiredCount)
	sb.Writef("Backlog Size End of Day:\t%d\n", report.RemainingBacklogSize())
	return sb.String()
}

// FormatDayHeader renders the banner printed at the start of each day.
func FormatDayHeader(day int64) string {
	rule := "================================="
	return fmt.Sprintf("\n%s\nDAY %d\n%s\n", rule, day, rule)
}

func writeJobTable(sb *util.TabbedStringBuilder, title string, jobs []*jobdb.Job) {
	sb.Writef("\n%s\n", title)
	sb.Writef("---------------------------------\n")
	for _, job := range jobs {
		sb.Writef("Job %d\t| Compute: %d\t| Deadline: %d\n", job.Id(), job.ComputeCost(), job.Deadline())
	}
	if len(jobs) == 0 {
		sb.Writef("None\n")
	}
}
