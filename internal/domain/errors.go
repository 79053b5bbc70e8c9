package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConstraints = errors.New("invalid constraints")
	ErrUnschedulableJob   = errors.New("unschedulable job")
	ErrInvalidInput       = errors.New("invalid input")
)

// UnschedulableJobError names a job that can never be placed on the printer.
type UnschedulableJobError struct {
	JobID     string
	Volume    float64
	MaxVolume float64
}

func (e *UnschedulableJobError) Error() string {
	return fmt.Sprintf("%v: job %q volume %v exceeds max_volume %v", ErrUnschedulableJob, e.JobID, e.Volume, e.MaxVolume)
}

func (e *UnschedulableJobError) Is(target error) bool {
	return target == ErrUnschedulableJob
}
