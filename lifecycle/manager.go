package lifecycle

import (
	"fmt"
	"net"
	"sort"
	"strconv"

	"fleetscaler/config"
	"fleetscaler/eventlog"
	"fleetscaler/loadbalancer"
	"fleetscaler/models"
	"fleetscaler/runtime"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
)

// Manager owns the fleet: it provisions and terminates worker instances
// and walks each through its lifecycle states. The load balancer only
// ever references instances by endpoint; ownership stays here. Not safe
// for concurrent use: once the control loop starts it is the only
// caller.
type Manager struct {
	logger    lager.Logger
	clock     clock.Clock
	runtime   runtime.ContainerRuntime
	registry  loadbalancer.Registry
	prober    Prober
	events    eventlog.EventLog
	conf      *config.Config
	instances map[int]*models.Instance
	nextId    int
}

func NewManager(logger lager.Logger, clock clock.Clock, containerRuntime runtime.ContainerRuntime, registry loadbalancer.Registry, prober Prober, events eventlog.EventLog, conf *config.Config) *Manager {
	return &Manager{
		logger:    logger.Session("lifecycle"),
		clock:     clock,
		runtime:   containerRuntime,
		registry:  registry,
		prober:    prober,
		events:    events,
		conf:      conf,
		instances: map[int]*models.Instance{},
		nextId:    1,
	}
}

// Reconcile adopts workers already running in the container runtime,
// rebuilding the in-memory fleet and syncing the load balancer to it.
// Called once at startup before the control loop takes over.
func (m *Manager) Reconcile() error {
	workers, err := m.runtime.List()
	if err != nil {
		m.logger.Error("failed-to-list-running-workers", err)
		return err
	}

	m.instances = map[int]*models.Instance{}
	m.nextId = 1
	targets := []models.UpstreamTarget{}
	for _, w := range workers {
		instance := &models.Instance{
			Id:          w.InstanceId,
			ContainerId: w.ContainerId,
			Endpoint:    w.Endpoint,
			State:       models.InstanceStateInService,
			CreatedAt:   w.CreatedAt,
		}
		m.instances[w.InstanceId] = instance
		if w.InstanceId >= m.nextId {
			m.nextId = w.InstanceId + 1
		}
		targets = append(targets, m.targetFor(instance))
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i].InstanceId < targets[j].InstanceId })

	if err := m.registry.Sync(targets); err != nil {
		return err
	}

	m.logger.Info("reconciled-fleet", lager.Data{"instanceCount": len(m.instances)})
	return nil
}

func (m *Manager) Instances() []*models.Instance {
	instances := make([]*models.Instance, 0, len(m.instances))
	for _, instance := range m.instances {
		instances = append(instances, instance)
	}
	sort.Slice(instances, func(i, j int) bool { return instances[i].Id < instances[j].Id })
	return instances
}

func (m *Manager) Count() int {
	return len(m.instances)
}

// Add provisions one instance, validates it against its health endpoint
// and registers it with the load balancer. A failure at any step tears
// the instance down and leaves the load balancer config untouched (or
// rolled back if it had been mutated).
func (m *Manager) Add() (*models.Instance, error) {
	if len(m.instances) >= m.conf.Scaling.MaxInstances {
		err := &AtCapacityError{Max: m.conf.Scaling.MaxInstances}
		m.logger.Info("add-refused-at-capacity", lager.Data{"max": m.conf.Scaling.MaxInstances})
		m.events.Append(models.EventTypeWarning, "add refused: fleet at maximum size", err, nil)
		return nil, err
	}

	id := m.nextId
	m.nextId++
	port := m.nextPort()
	instance := &models.Instance{
		Id:        id,
		Endpoint:  net.JoinHostPort(m.conf.Runtime.WorkerHost, strconv.Itoa(port)),
		State:     models.InstanceStateProvisioning,
		CreatedAt: m.clock.Now(),
	}
	logger := m.logger.WithData(lager.Data{"instanceId": id, "endpoint": instance.Endpoint})
	logger.Info("provisioning-instance")
	m.events.Append(models.EventTypeLifecycle, fmt.Sprintf("provisioning instance %s at %s", instance.Name(), instance.Endpoint), nil, nil)

	containerId, err := m.runtime.Start(id, port)
	if err != nil {
		logger.Error("failed-to-start-instance", err)
		instance.State = models.InstanceStateFailed
		m.events.Append(models.EventTypeError, fmt.Sprintf("instance %s failed to start", instance.Name()), err, nil)
		return nil, err
	}
	instance.ContainerId = containerId

	if err := instance.SetState(models.InstanceStateHealthChecking); err != nil {
		return nil, err
	}
	if err := m.awaitHealthy(instance.Endpoint); err != nil {
		logger.Error("instance-failed-health-validation", err)
		m.teardownFailed(instance)
		m.events.Append(models.EventTypeError, fmt.Sprintf("instance %s failed health validation and was destroyed", instance.Name()), err, nil)
		return nil, err
	}

	if err := m.registry.Register(m.targetFor(instance)); err != nil {
		logger.Error("failed-to-register-instance", err)
		m.teardownFailed(instance)
		m.events.Append(models.EventTypeError, fmt.Sprintf("instance %s could not be registered and was destroyed", instance.Name()), err, nil)
		return nil, err
	}

	if err := instance.SetState(models.InstanceStateInService); err != nil {
		return nil, err
	}
	m.instances[id] = instance
	logger.Info("instance-in-service")
	m.events.Append(models.EventTypeLifecycle, fmt.Sprintf("instance %s in service at %s", instance.Name(), instance.Endpoint), nil, nil)
	return instance, nil
}

// Remove drains and terminates the given instance. Refused when the
// fleet is already at its minimum size.
func (m *Manager) Remove(id int) error {
	if _, ok := m.instances[id]; !ok {
		return &InstanceNotFoundError{Id: id}
	}
	if len(m.instances) <= m.conf.Scaling.MinInstances {
		err := &AtMinimumError{Min: m.conf.Scaling.MinInstances}
		m.logger.Info("remove-refused-at-capacity", lager.Data{"min": m.conf.Scaling.MinInstances})
		m.events.Append(models.EventTypeWarning, "remove refused: fleet at minimum size", err, nil)
		return err
	}
	return m.drainAndTerminate(id)
}

// Evict removes an unhealthy instance through the same drain path as a
// manual removal, bypassing the minimum-size guard: a broken instance is
// worse than a small fleet.
func (m *Manager) Evict(id int) error {
	if _, ok := m.instances[id]; !ok {
		return &InstanceNotFoundError{Id: id}
	}
	return m.drainAndTerminate(id)
}

// RemoveNewest removes the most recently added instance, minimizing
// disruption to longer-lived connections.
func (m *Manager) RemoveNewest() error {
	newest := -1
	for id := range m.instances {
		if id > newest {
			newest = id
		}
	}
	if newest < 0 {
		return &InstanceNotFoundError{Id: newest}
	}
	return m.Remove(newest)
}

// ScaleTo drives the fleet toward the target size with repeated
// Add/Remove calls.
func (m *Manager) ScaleTo(target int) error {
	if target < m.conf.Scaling.MinInstances || target > m.conf.Scaling.MaxInstances {
		return fmt.Errorf("target %d outside allowed bounds [%d, %d]", target, m.conf.Scaling.MinInstances, m.conf.Scaling.MaxInstances)
	}
	for len(m.instances) < target {
		if _, err := m.Add(); err != nil {
			return err
		}
	}
	for len(m.instances) > target {
		if err := m.RemoveNewest(); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) drainAndTerminate(id int) error {
	instance := m.instances[id]
	logger := m.logger.WithData(lager.Data{"instanceId": id, "endpoint": instance.Endpoint})

	if err := instance.SetState(models.InstanceStateDraining); err != nil {
		return err
	}

	// Deregister before stopping so the proxy never routes to an
	// instance mid-shutdown.
	if err := m.registry.Deregister(instance.Endpoint); err != nil {
		logger.Error("failed-to-deregister-instance", err)
		instance.State = models.InstanceStateInService
		m.events.Append(models.EventTypeError, fmt.Sprintf("instance %s could not be deregistered", instance.Name()), err, nil)
		return err
	}
	logger.Info("instance-draining", lager.Data{"drainInterval": m.conf.Health.DrainInterval.String()})
	m.events.Append(models.EventTypeLifecycle, fmt.Sprintf("instance %s draining", instance.Name()), nil, nil)

	m.clock.Sleep(m.conf.Health.DrainInterval)

	stopErr := m.runtime.Stop(instance.ContainerId)
	if stopErr != nil {
		logger.Error("failed-to-stop-instance", stopErr)
		m.events.Append(models.EventTypeError, fmt.Sprintf("instance %s failed to stop cleanly", instance.Name()), stopErr, nil)
	}

	if err := instance.SetState(models.InstanceStateTerminated); err != nil {
		return err
	}
	delete(m.instances, id)
	logger.Info("instance-terminated")
	m.events.Append(models.EventTypeLifecycle, fmt.Sprintf("instance %s terminated", instance.Name()), nil, nil)
	return stopErr
}

func (m *Manager) awaitHealthy(endpoint string) error {
	deadline := m.clock.Now().Add(m.conf.Health.CheckTimeout)
	for {
		if err := m.prober.Probe(endpoint); err == nil {
			return nil
		}
		if !m.clock.Now().Before(deadline) {
			return &HealthCheckTimeoutError{Endpoint: endpoint, Timeout: m.conf.Health.CheckTimeout}
		}
		m.clock.Sleep(m.conf.Health.CheckInterval)
	}
}

func (m *Manager) teardownFailed(instance *models.Instance) {
	instance.State = models.InstanceStateFailed
	if err := m.runtime.Stop(instance.ContainerId); err != nil {
		m.logger.Error("failed-to-tear-down-failed-instance", err, lager.Data{"containerId": instance.ContainerId})
	}
}

func (m *Manager) targetFor(instance *models.Instance) models.UpstreamTarget {
	return models.UpstreamTarget{
		InstanceId:  instance.Id,
		Endpoint:    instance.Endpoint,
		Weight:      m.conf.LoadBalancer.TargetWeight,
		MaxFails:    m.conf.LoadBalancer.TargetMaxFails,
		FailTimeout: m.conf.LoadBalancer.TargetFailTimeout,
	}
}

// nextPort returns the lowest port slot above the highest one in use.
func (m *Manager) nextPort() int {
	max := m.conf.Runtime.WorkerBasePort - 1
	for _, instance := range m.instances {
		_, portStr, err := net.SplitHostPort(instance.Endpoint)
		if err != nil {
			continue
		}
		port, err := strconv.Atoi(portStr)
		if err == nil && port > max {
			max = port
		}
	}
	return max + 1
}
