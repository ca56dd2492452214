package scheduler

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ReportCycle(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	s := NewScheduler(metrics)
	s.SubmitJob(5, 3)
	s.SubmitJob(2, 3)
	s.SubmitJob(9, 1)
	s.SubmitJob(4, 0)
	s.RunCycle(1, 2)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.cycles))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.executedJobs))
	assert.Equal(t, 11.0, testutil.ToFloat64(metrics.executedCompute))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.expiredJobs))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.backlogSize))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.currentDay))

	s.RunCycle(2, 1)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.cycles))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.executedJobs))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.backlogSize))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.currentDay))
}
