package healthmonitor

import (
	"errors"
	"fmt"
	"time"

	"fleetscaler/eventlog"
	"fleetscaler/lifecycle"
	"fleetscaler/loadbalancer"
	"fleetscaler/models"
	"fleetscaler/runtime"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
)

// Fleet is the slice of the lifecycle manager the monitor needs:
// enumeration and eviction.
type Fleet interface {
	Instances() []*models.Instance
	Evict(id int) error
}

type ProbeResult struct {
	Instance *models.Instance
	Healthy  bool
}

// Monitor probes every in-service instance once per sweep. An unhealthy
// instance gets one in-place restart and a grace period; if it still
// fails it is evicted through the same drain path as a manual removal,
// so it is always deregistered before it is destroyed.
type Monitor struct {
	logger  lager.Logger
	clock   clock.Clock
	runtime runtime.ContainerRuntime
	fleet   Fleet
	prober  lifecycle.Prober
	events  eventlog.EventLog
	grace   time.Duration
}

func NewMonitor(logger lager.Logger, clock clock.Clock, containerRuntime runtime.ContainerRuntime, fleet Fleet, prober lifecycle.Prober, events eventlog.EventLog, grace time.Duration) *Monitor {
	return &Monitor{
		logger:  logger.Session("healthmonitor"),
		clock:   clock,
		runtime: containerRuntime,
		fleet:   fleet,
		prober:  prober,
		events:  events,
		grace:   grace,
	}
}

func (m *Monitor) Sweep() ([]ProbeResult, error) {
	results := []ProbeResult{}
	for _, instance := range m.fleet.Instances() {
		if instance.State != models.InstanceStateInService {
			continue
		}

		if err := m.prober.Probe(instance.Endpoint); err == nil {
			results = append(results, ProbeResult{Instance: instance, Healthy: true})
			continue
		} else {
			m.logger.Info("instance-unhealthy", lager.Data{"instanceId": instance.Id, "endpoint": instance.Endpoint, "error": err.Error()})
		}

		if m.recoverInPlace(instance) {
			results = append(results, ProbeResult{Instance: instance, Healthy: true})
			continue
		}

		results = append(results, ProbeResult{Instance: instance, Healthy: false})
		m.logger.Error("evicting-unhealthy-instance", nil, lager.Data{"instanceId": instance.Id, "endpoint": instance.Endpoint})
		m.events.Append(models.EventTypeError, fmt.Sprintf("evicting unhealthy instance %s", instance.Name()), nil, nil)

		if err := m.fleet.Evict(instance.Id); err != nil {
			var fatal *loadbalancer.FatalConfigError
			if errors.As(err, &fatal) {
				return results, err
			}
			m.logger.Error("failed-to-evict-instance", err, lager.Data{"instanceId": instance.Id})
		}
	}
	return results, nil
}

// recoverInPlace restarts the instance once and re-probes after the
// grace period.
func (m *Monitor) recoverInPlace(instance *models.Instance) bool {
	if err := m.runtime.Restart(instance.ContainerId); err != nil {
		m.logger.Error("failed-to-restart-instance", err, lager.Data{"instanceId": instance.Id})
		return false
	}

	m.clock.Sleep(m.grace)

	if err := m.prober.Probe(instance.Endpoint); err != nil {
		m.logger.Info("instance-still-unhealthy-after-restart", lager.Data{"instanceId": instance.Id, "error": err.Error()})
		return false
	}

	m.logger.Info("instance-recovered-after-restart", lager.Data{"instanceId": instance.Id})
	m.events.Append(models.EventTypeLifecycle, fmt.Sprintf("instance %s recovered after in-place restart", instance.Name()), nil, nil)
	return true
}
