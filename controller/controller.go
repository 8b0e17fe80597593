package controller

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"fleetscaler/config"
	"fleetscaler/eventlog"
	"fleetscaler/healthendpoint"
	"fleetscaler/healthmonitor"
	"fleetscaler/loadbalancer"
	"fleetscaler/models"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/prometheus/client_golang/prometheus"
)

type Sweeper interface {
	Sweep() ([]healthmonitor.ProbeResult, error)
}

type Sampler interface {
	Sample() (*models.MetricsSnapshot, error)
}

type Decider interface {
	Decide(snapshot *models.MetricsSnapshot, cooldown *models.CooldownState) *models.ScalingDecision
}

type Fleet interface {
	Add() (*models.Instance, error)
	RemoveNewest() error
	Instances() []*models.Instance
}

var (
	DecisionsCounterOpts = prometheus.CounterOpts{
		Namespace: "fleetscaler", Subsystem: "controller", Name: "decisions_total",
		Help: "Number of scaling decisions evaluated.",
	}
	ScaleUpsCounterOpts = prometheus.CounterOpts{
		Namespace: "fleetscaler", Subsystem: "controller", Name: "scale_ups_total",
		Help: "Number of completed scale-up actions.",
	}
	ScaleDownsCounterOpts = prometheus.CounterOpts{
		Namespace: "fleetscaler", Subsystem: "controller", Name: "scale_downs_total",
		Help: "Number of completed scale-down actions.",
	}
	ActionFailuresCounterOpts = prometheus.CounterOpts{
		Namespace: "fleetscaler", Subsystem: "controller", Name: "action_failures_total",
		Help: "Number of scaling actions that failed.",
	}
)

// Controller runs the single-threaded control loop. Per tick it sweeps
// instance health, samples metrics, asks the policy engine for a
// decision and applies it through the lifecycle manager. External calls
// are blocking, which serializes all mutating actions by construction.
// The stop signal is honored between ticks, never mid-mutation.
type Controller struct {
	logger       lager.Logger
	clock        clock.Clock
	sweeper      Sweeper
	sampler      Sampler
	decider      Decider
	fleet        Fleet
	events       eventlog.EventLog
	counters     healthendpoint.CounterCollector
	cooldown     *models.CooldownState
	pollInterval time.Duration
	settleDelay  time.Duration

	statusLock   sync.RWMutex
	lastSnapshot *models.MetricsSnapshot
	fleetView    []*models.Instance
}

func New(logger lager.Logger, clock clock.Clock, sweeper Sweeper, sampler Sampler, decider Decider, fleet Fleet, events eventlog.EventLog, counters healthendpoint.CounterCollector, conf config.ScalingConfig) *Controller {
	counters.AddCounters(DecisionsCounterOpts, ScaleUpsCounterOpts, ScaleDownsCounterOpts, ActionFailuresCounterOpts)
	return &Controller{
		logger:       logger.Session("controller"),
		clock:        clock,
		sweeper:      sweeper,
		sampler:      sampler,
		decider:      decider,
		fleet:        fleet,
		events:       events,
		counters:     counters,
		cooldown:     &models.CooldownState{},
		pollInterval: conf.PollInterval,
		settleDelay:  conf.SettleDelay,
	}
}

func (c *Controller) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	close(ready)
	ticker := c.clock.NewTicker(c.pollInterval)

	c.logger.Info("started", lager.Data{"pollInterval": c.pollInterval.String()})

	for {
		if err := c.tick(); err != nil {
			c.logger.Error("halting-automatic-scaling", err)
			c.events.Append(models.EventTypeError, "automatic scaling halted, operator intervention required", err, nil)
			ticker.Stop()
			return err
		}
		select {
		case <-signals:
			ticker.Stop()
			c.logger.Info("stopped")
			return nil
		case <-ticker.C():
		}
	}
}

// tick returns a non-nil error only for the fatal class: a broken load
// balancer config that could not be rolled back.
func (c *Controller) tick() error {
	defer c.refreshFleetView()

	if _, err := c.sweeper.Sweep(); err != nil {
		return err
	}

	// Let restarted instances settle before judging fleet load.
	if c.settleDelay > 0 {
		c.clock.Sleep(c.settleDelay)
	}

	snapshot, err := c.sampler.Sample()
	if err != nil {
		c.logger.Error("skipping-tick-without-metrics", err)
		return nil
	}
	c.setLastSnapshot(snapshot)

	decision := c.decider.Decide(snapshot, c.cooldown)
	c.counters.Add(DecisionsCounterOpts, 1)
	c.logger.Info("decision", lager.Data{"action": decision.Action, "reasons": decision.Reasons, "instanceCount": snapshot.InstanceCount})

	switch decision.Action {
	case models.ScalingActionScaleUp:
		c.events.Append(models.EventTypeDecision, "scale up: "+strings.Join(decision.Reasons, "; "), nil, nil)
		if _, err := c.fleet.Add(); err != nil {
			return c.actionFailed("scale-up-failed", err)
		}
		c.cooldown.LastScaleUp = c.clock.Now()
		c.counters.Add(ScaleUpsCounterOpts, 1)
	case models.ScalingActionScaleDown:
		c.events.Append(models.EventTypeDecision, "scale down: "+strings.Join(decision.Reasons, "; "), nil, nil)
		if err := c.fleet.RemoveNewest(); err != nil {
			return c.actionFailed("scale-down-failed", err)
		}
		c.cooldown.LastScaleDown = c.clock.Now()
		c.counters.Add(ScaleDownsCounterOpts, 1)
	}

	return nil
}

func (c *Controller) actionFailed(message string, err error) error {
	c.counters.Add(ActionFailuresCounterOpts, 1)
	var fatal *loadbalancer.FatalConfigError
	if errors.As(err, &fatal) {
		return err
	}
	c.logger.Error(message, err)
	return nil
}

func (c *Controller) setLastSnapshot(snapshot *models.MetricsSnapshot) {
	c.statusLock.Lock()
	c.lastSnapshot = snapshot
	c.statusLock.Unlock()
}

// refreshFleetView caches copies of the fleet for the status endpoint.
// The loop owns the live instances and keeps mutating their state; the
// endpoint goroutine only ever sees the copies taken at the end of a
// tick.
func (c *Controller) refreshFleetView() {
	live := c.fleet.Instances()
	view := make([]*models.Instance, 0, len(live))
	for _, instance := range live {
		copied := *instance
		view = append(view, &copied)
	}
	c.statusLock.Lock()
	c.fleetView = view
	c.statusLock.Unlock()
}

// Status is read by the HTTP status endpoint from another goroutine.
func (c *Controller) Status() *models.FleetStatus {
	c.statusLock.RLock()
	snapshot := c.lastSnapshot
	instances := c.fleetView
	c.statusLock.RUnlock()

	events, err := c.events.Tail(20)
	if err != nil {
		c.logger.Error("failed-to-read-event-log-tail", err)
	}

	return &models.FleetStatus{
		InstanceCount: len(instances),
		Instances:     instances,
		LastSnapshot:  snapshot,
		RecentEvents:  events,
	}
}
