package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/daysched/daysched/internal/common"
	"github.com/daysched/daysched/internal/common/app"
	"github.com/daysched/daysched/internal/scheduler"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Runs the scheduler day by day, reading jobs from the terminal",
		RunE:  runScheduler,
	}
	return cmd
}

func runScheduler(cmd *cobra.Command, _ []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := app.CreateContextWithShutdown()

	shutdownMetricServer := common.ServeMetrics(config.MetricsPort)
	defer shutdownMetricServer()

	metrics := scheduler.NewMetrics(prometheus.DefaultRegisterer)
	s := scheduler.NewScheduler(metrics)

	log.Infof("Starting scheduler on day %d", config.StartDay)
	return runInteractive(ctx, s, config, cmd.InOrStdin(), cmd.OutOrStdout())
}

// runInteractive drives the scheduler through one cycle per day until the
// operator answers the continue prompt with 0, input is exhausted, or the
// process is signalled to shut down.
func runInteractive(
	ctx context.Context,
	s *scheduler.Scheduler,
	config scheduler.Configuration,
	in io.Reader,
	out io.Writer,
) error {
	p := newPrompter(in, out)

	day := config.StartDay
	for ctx.Err() == nil {
		fmt.Fprint(out, scheduler.FormatDayHeader(day))

		numJobs, err := p.readCount("Enter number of new jobs today: ")
		if err != nil {
			return stopOnEof(out, err)
		}
		for i := 0; i < numJobs; i++ {
			spec, err := p.readJobSpec("Enter compute and deadline: ")
			if err != nil {
				return stopOnEof(out, err)
			}
			s.SubmitJob(spec.ComputeCost, spec.Deadline)
		}

		capacity, err := p.readCapacity(
			fmt.Sprintf("Enter number of jobs to execute today [%d]: ", config.DefaultCapacity),
			config.DefaultCapacity,
			true,
		)
		if err != nil {
			return stopOnEof(out, err)
		}

		report := s.RunCycle(day, capacity)
		fmt.Fprint(out, scheduler.FormatReport(report))

		cont, err := p.readCount("\nContinue to next day? (1 = Yes / 0 = Exit): ")
		if err != nil {
			return stopOnEof(out, err)
		}
		if cont == 0 {
			break
		}
		day++
	}

	fmt.Fprintln(out, "\nSystem Stopped.")
	return nil
}

// stopOnEof treats exhausted input as a normal stop rather than a failure.
func stopOnEof(out io.Writer, err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(out, "\nSystem Stopped.")
		return nil
	}
	return err
}
