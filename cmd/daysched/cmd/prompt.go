package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/daysched/daysched/internal/common/validation"
	"github.com/daysched/daysched/internal/scheduler"
)

// prompter reads line-oriented operator input. Invalid input is rejected with a
// message and the prompt repeats; it never reaches the scheduler. EOF on the
// input is reported as io.EOF so callers can wind down gracefully.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", errors.WithStack(err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *prompter) readInt(prompt string) (int64, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			fmt.Fprintf(p.out, "Please enter a whole number.\n")
			continue
		}
		return value, nil
	}
}

// readCount reads a non-negative int, e.g. a number of jobs.
func (p *prompter) readCount(prompt string) (int, error) {
	for {
		value, err := p.readInt(prompt)
		if err != nil {
			return 0, err
		}
		if value < 0 {
			fmt.Fprintf(p.out, "Please enter a non-negative number.\n")
			continue
		}
		return int(value), nil
	}
}

// readCapacity reads a daily admission capacity. An empty line selects
// defaultCapacity if useDefault is set.
func (p *prompter) readCapacity(prompt string, defaultCapacity int, useDefault bool) (int, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if line == "" && useDefault {
			return defaultCapacity, nil
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(p.out, "Please enter a whole number.\n")
			continue
		}
		if err := validation.ValidateCapacity(value); err != nil {
			fmt.Fprintf(p.out, "%s\n", err)
			continue
		}
		return value, nil
	}
}

// readJobSpec reads a "compute deadline" pair on a single line.
func (p *prompter) readJobSpec(prompt string) (scheduler.JobSpec, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return scheduler.JobSpec{}, err
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			fmt.Fprintf(p.out, "Please enter two whole numbers: compute cost and deadline.\n")
			continue
		}
		computeCost, err1 := strconv.ParseInt(fields[0], 10, 64)
		deadline, err2 := strconv.ParseInt(fields[1], 10, 64)
		if err1 != nil || err2 != nil {
			fmt.Fprintf(p.out, "Please enter two whole numbers: compute cost and deadline.\n")
			continue
		}
		if err := validation.ValidateJobFields(computeCost, deadline); err != nil {
			fmt.Fprintf(p.out, "%s\n", err)
			continue
		}
		return scheduler.JobSpec{ComputeCost: computeCost, Deadline: deadline}, nil
	}
}
