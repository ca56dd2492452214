package scheduler

import (
	"github.com/go-playground/validator/v10"
)

// Configuration for the daysched application.
type Configuration struct {
	// Number of jobs admitted per day when the operator does not give one at the prompt.
	DefaultCapacity int `validate:"gte=0"`
	// Day the first scheduling cycle runs on.
	StartDay int64
	// Port on which prometheus metrics are exposed.
	MetricsPort uint16 `validate:"required"`
}

func (c Configuration) Validate() error {
	return validator.New().Struct(c)
}
