package jobdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobPriorityComparer(t *testing.T) {
	tests := map[string]struct {
		a        *Job
		b        *Job
		expected int
	}{
		"Jobs are ordered first by increasing deadline": {
			a:        &Job{id: 1, computeCost: 9, deadline: 1},
			b:        &Job{id: 2, computeCost: 2, deadline: 3},
			expected: -1,
		},
		"Later deadlines come last regardless of compute cost": {
			a:        &Job{id: 1, computeCost: 1, deadline: 5},
			b:        &Job{id: 2, computeCost: 100, deadline: 4},
			expected: 1,
		},
		"Jobs with equal deadlines are ordered by increasing compute cost": {
			a:        &Job{id: 1, computeCost: 5, deadline: 2},
			b:        &Job{id: 2, computeCost: 3, deadline: 2},
			expected: 1,
		},
		"Jobs tied on deadline and compute cost compare equal": {
			a:        &Job{id: 1, computeCost: 3, deadline: 2},
			b:        &Job{id: 2, computeCost: 3, deadline: 2},
			expected: 0,
		},
		"A job compares equal to itself": {
			a:        &Job{id: 1, computeCost: 3, deadline: 2},
			b:        &Job{id: 1, computeCost: 3, deadline: 2},
			expected: 0,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, JobPriorityComparer{}.Compare(tc.a, tc.b))
		})
	}
}
