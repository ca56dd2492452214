// Package validation contains the input validation applied by the I/O layer
// before values reach the scheduler. The scheduler itself assumes well-formed
// inputs and has no error paths; everything here is rejected at the boundary.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

// ErrInvalidCapacity indicates a negative daily capacity was supplied.
type ErrInvalidCapacity struct {
	// The capacity that was supplied.
	Value int
	// Optional message included with the error message.
	Message string
}

func (err *ErrInvalidCapacity) Error() (s string) {
	s = fmt.Sprintf("invalid capacity %d: must be non-negative", err.Value)
	if err.Message != "" {
		s = s + fmt.Sprintf("; %s", err.Message)
	}
	return
}

// ErrInvalidJobFields indicates a job was submitted with an out-of-range field.
type ErrInvalidJobFields struct {
	// Name of the offending field, e.g., "computeCost".
	Field string
	// The value that was supplied.
	Value int64
	// Optional message included with the error message.
	Message string
}

func (err *ErrInvalidJobFields) Error() (s string) {
	s = fmt.Sprintf("invalid job field %s with value %d", err.Field, err.Value)
	if err.Message != "" {
		s = s + fmt.Sprintf("; %s", err.Message)
	}
	return
}

// ValidateCapacity rejects negative capacities.
func ValidateCapacity(capacity int) error {
	if capacity < 0 {
		return &ErrInvalidCapacity{Value: capacity}
	}
	return nil
}

// ValidateJobFields rejects jobs with a negative compute cost.
// Deadlines may be any integer; a deadline in the past simply expires immediately.
func ValidateJobFields(computeCost int64, deadline int64) error {
	if computeCost < 0 {
		return &ErrInvalidJobFields{
			Field:   "computeCost",
			Value:   computeCost,
			Message: "compute cost must be non-negative",
		}
	}
	return nil
}

// LogValidationErrors logs each field error in a configuration validation failure.
func LogValidationErrors(err error) {
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			fieldName := err.Field()
			tag := err.Tag()
			switch tag {
			case "required":
				log.Errorf("ConfigError: Field %s is required but was not found", fieldName)
			default:
				log.Errorf("ConfigError: Field %s has invalid value %v: %s", fieldName, err.Value(), tag)
			}
		}
	}
}
