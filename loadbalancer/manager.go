package loadbalancer

import (
	"errors"
	"fmt"

	"fleetscaler/models"

	"code.cloudfoundry.org/lager"
)

// ProxyController is the control surface of the concrete reverse proxy.
// Validate installs the staged config and checks it with the proxy's own
// validation facility; Apply signals a connection-preserving reload;
// Rollback restores the given known-good config and signals reload again.
type ProxyController interface {
	ReadActive() ([]byte, error)
	WriteBackup(contents []byte) error
	Stage(contents []byte) error
	Validate() error
	Apply() error
	Rollback(backup []byte) error
}

// Registry is the view of the load balancer the lifecycle manager
// consumes: targets are added and removed by instance endpoint.
type Registry interface {
	Register(target models.UpstreamTarget) error
	Deregister(endpoint string) error
	Sync(targets []models.UpstreamTarget) error
}

type DuplicateTargetError struct {
	Endpoint string
}

func (e *DuplicateTargetError) Error() string {
	return fmt.Sprintf("upstream target %s is already registered", e.Endpoint)
}

type TargetNotFoundError struct {
	Endpoint string
}

func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("upstream target %s not found", e.Endpoint)
}

type ConfigValidationError struct {
	Err error
}

func (e *ConfigValidationError) Error() string {
	return fmt.Sprintf("staged load balancer config failed validation: %s", e.Err)
}

func (e *ConfigValidationError) Unwrap() error { return e.Err }

type ConfigReloadError struct {
	Err error
}

func (e *ConfigReloadError) Error() string {
	return fmt.Sprintf("load balancer reload failed: %s", e.Err)
}

func (e *ConfigReloadError) Unwrap() error { return e.Err }

// FatalConfigError means a rollback was needed and could not be
// performed. The proxy may be routing on a broken config; automatic
// scaling must halt until an operator intervenes.
type FatalConfigError struct {
	Err error
}

func (e *FatalConfigError) Error() string {
	return fmt.Sprintf("fatal load balancer config error: %s", e.Err)
}

func (e *FatalConfigError) Unwrap() error { return e.Err }

// Manager owns the load balancer's active configuration and its single
// backup slot. Every mutation follows the same discipline: snapshot a
// backup, mutate a staged copy, validate, apply, and roll back to the
// backup on any failure so the active config is left bit-identical.
// Mutations are serialized by the single-threaded control loop; the
// manager does no internal locking.
type Manager struct {
	logger     lager.Logger
	controller ProxyController
	active     *models.LoadBalancerConfig
	backup     []byte
}

func NewManager(logger lager.Logger, controller ProxyController, upstreamName string) *Manager {
	return &Manager{
		logger:     logger.Session("loadbalancer"),
		controller: controller,
		active: &models.LoadBalancerConfig{
			UpstreamName: upstreamName,
		},
	}
}

func (m *Manager) Active() *models.LoadBalancerConfig {
	return m.active.Clone()
}

func (m *Manager) Register(target models.UpstreamTarget) error {
	if m.active.HasTarget(target.Endpoint) {
		return &DuplicateTargetError{Endpoint: target.Endpoint}
	}

	staged := m.active.Clone()
	if err := staged.AddTarget(target); err != nil {
		return err
	}

	err := m.commit(staged)
	if err != nil {
		m.logger.Error("failed-to-register-target", err, lager.Data{"endpoint": target.Endpoint})
		return err
	}
	m.logger.Info("registered-target", lager.Data{"endpoint": target.Endpoint, "targets": len(staged.Targets)})
	return nil
}

func (m *Manager) Deregister(endpoint string) error {
	if !m.active.HasTarget(endpoint) {
		return &TargetNotFoundError{Endpoint: endpoint}
	}

	staged := m.active.Clone()
	if err := staged.RemoveTarget(endpoint); err != nil {
		return err
	}

	err := m.commit(staged)
	if err != nil {
		m.logger.Error("failed-to-deregister-target", err, lager.Data{"endpoint": endpoint})
		return err
	}
	m.logger.Info("deregistered-target", lager.Data{"endpoint": endpoint, "targets": len(staged.Targets)})
	return nil
}

// Sync replaces the whole target list in one mutation. Used at startup to
// bring the proxy in line with the fleet adopted from the runtime.
func (m *Manager) Sync(targets []models.UpstreamTarget) error {
	staged := &models.LoadBalancerConfig{
		UpstreamName: m.active.UpstreamName,
		Targets:      make([]models.UpstreamTarget, len(targets)),
	}
	copy(staged.Targets, targets)

	err := m.commit(staged)
	if err != nil {
		m.logger.Error("failed-to-sync-targets", err, lager.Data{"targets": len(targets)})
		return err
	}
	m.logger.Info("synced-targets", lager.Data{"targets": len(targets)})
	return nil
}

func (m *Manager) commit(staged *models.LoadBalancerConfig) error {
	backup, err := m.controller.ReadActive()
	if err != nil {
		return fmt.Errorf("failed to snapshot active config: %w", err)
	}
	if err := m.controller.WriteBackup(backup); err != nil {
		return fmt.Errorf("failed to write backup copy: %w", err)
	}
	m.backup = backup

	if err := m.controller.Stage(SerializeUpstream(staged)); err != nil {
		return fmt.Errorf("failed to stage config: %w", err)
	}

	if err := m.controller.Validate(); err != nil {
		if rbErr := m.rollback(); rbErr != nil {
			return rbErr
		}
		return &ConfigValidationError{Err: err}
	}

	if err := m.controller.Apply(); err != nil {
		if rbErr := m.rollback(); rbErr != nil {
			return rbErr
		}
		return &ConfigReloadError{Err: err}
	}

	m.active = staged
	return nil
}

func (m *Manager) rollback() error {
	if m.backup == nil {
		err := &FatalConfigError{Err: errors.New("backup snapshot missing, cannot roll back")}
		m.logger.Error("rollback-impossible", err)
		return err
	}
	if err := m.controller.Rollback(m.backup); err != nil {
		fatal := &FatalConfigError{Err: err}
		m.logger.Error("rollback-failed", fatal)
		return fatal
	}
	m.logger.Info("rolled-back-to-backup")
	return nil
}
