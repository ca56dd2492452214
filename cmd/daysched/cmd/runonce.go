package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/daysched/daysched/internal/scheduler"
)

func runOnceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run-once",
		Short: "Runs a single scheduling pass over jobs read from the terminal",
		RunE:  runOnceScheduler,
	}
	return cmd
}

func runOnceScheduler(cmd *cobra.Command, _ []string) error {
	return runOnce(cmd.InOrStdin(), cmd.OutOrStdout())
}

// runOnce reads a batch of jobs, a reference day and a capacity, runs a single
// scheduling cycle over them and prints the resulting report.
func runOnce(in io.Reader, out io.Writer) error {
	p := newPrompter(in, out)

	numJobs, err := p.readCount("Enter number of jobs: ")
	if err != nil {
		return err
	}

	specs := make([]scheduler.JobSpec, 0, numJobs)
	for i := 0; i < numJobs; i++ {
		spec, err := p.readJobSpec(fmt.Sprintf("Enter compute and deadline for Job %d: ", i+1))
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}

	today, err := p.readInt("Enter today's day: ")
	if err != nil {
		return err
	}
	capacity, err := p.readCapacity("Enter number of jobs to execute today (N): ", 0, false)
	if err != nil {
		return err
	}

	s := scheduler.NewScheduler(nil)
	report := s.RunOnce(specs, today, capacity)
	fmt.Fprint(out, scheduler.FormatReport(report))
	return nil
}
