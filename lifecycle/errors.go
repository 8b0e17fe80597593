package lifecycle

import (
	"fmt"
	"time"
)

type InstanceNotFoundError struct {
	Id int
}

func (e *InstanceNotFoundError) Error() string {
	return fmt.Sprintf("instance %d not found", e.Id)
}

type AtCapacityError struct {
	Max int
}

func (e *AtCapacityError) Error() string {
	return fmt.Sprintf("fleet already at maximum of %d instances", e.Max)
}

type AtMinimumError struct {
	Min int
}

func (e *AtMinimumError) Error() string {
	return fmt.Sprintf("fleet already at minimum of %d instances", e.Min)
}

type HealthCheckTimeoutError struct {
	Endpoint string
	Timeout  time.Duration
}

func (e *HealthCheckTimeoutError) Error() string {
	return fmt.Sprintf("instance at %s did not become healthy within %s", e.Endpoint, e.Timeout)
}
