package models

import (
	"fmt"
	"time"
)

type InstanceState string

const (
	InstanceStateProvisioning   InstanceState = "provisioning"
	InstanceStateHealthChecking InstanceState = "healthchecking"
	InstanceStateInService      InstanceState = "inservice"
	InstanceStateDraining       InstanceState = "draining"
	InstanceStateTerminated     InstanceState = "terminated"
	InstanceStateFailed         InstanceState = "failed"
)

var validTransitions = map[InstanceState][]InstanceState{
	InstanceStateProvisioning:   {InstanceStateHealthChecking, InstanceStateFailed},
	InstanceStateHealthChecking: {InstanceStateInService, InstanceStateFailed},
	InstanceStateInService:      {InstanceStateDraining},
	InstanceStateDraining:       {InstanceStateTerminated},
	InstanceStateTerminated:     {},
	InstanceStateFailed:         {},
}

func (s InstanceState) CanTransitionTo(next InstanceState) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Instance struct {
	Id          int           `json:"id"`
	ContainerId string        `json:"container_id"`
	Endpoint    string        `json:"endpoint"`
	State       InstanceState `json:"state"`
	CreatedAt   time.Time     `json:"created_at"`
}

func (i *Instance) SetState(next InstanceState) error {
	if !i.State.CanTransitionTo(next) {
		return fmt.Errorf("invalid instance state transition from %s to %s", i.State, next)
	}
	i.State = next
	return nil
}

func (i *Instance) Name() string {
	return fmt.Sprintf("worker-%d", i.Id)
}
