package scalingengine

import (
	"fmt"

	"fleetscaler/config"
	"fleetscaler/models"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
)

// Engine converts a metrics snapshot plus cooldown state into a scaling
// decision. Scale-up fires when any load signal breaches its threshold;
// scale-down only when every signal sits below half of its scale-up
// counterpart. The halved thresholds are the hysteresis band that keeps
// the fleet from oscillating around a single threshold.
type Engine struct {
	logger lager.Logger
	clock  clock.Clock
	conf   config.ScalingConfig
}

func NewEngine(logger lager.Logger, clock clock.Clock, conf config.ScalingConfig) *Engine {
	return &Engine{
		logger: logger.Session("scalingengine"),
		clock:  clock,
		conf:   conf,
	}
}

func (e *Engine) Decide(snapshot *models.MetricsSnapshot, cooldown *models.CooldownState) *models.ScalingDecision {
	now := e.clock.Now()
	decision := &models.ScalingDecision{
		Action:    models.ScalingActionNone,
		Timestamp: now.UnixNano(),
	}

	upReasons := e.scaleUpReasons(snapshot)
	if len(upReasons) > 0 {
		// Scale-up has priority over scale-down even if misconfigured
		// thresholds let both fire.
		if snapshot.InstanceCount >= e.conf.MaxInstances {
			decision.Reasons = append(upReasons, fmt.Sprintf("refused: already at maximum of %d instances", e.conf.MaxInstances))
			e.logger.Info("scale-up-refused-at-capacity", lager.Data{"instanceCount": snapshot.InstanceCount, "max": e.conf.MaxInstances, "reasons": upReasons})
			return decision
		}
		if !cooldown.ScaleUpAllowed(now, e.conf.ScaleUpCooldown) {
			decision.Reasons = append(upReasons, fmt.Sprintf("refused: scale-up cooldown %s not elapsed", e.conf.ScaleUpCooldown))
			e.logger.Info("scale-up-refused-in-cooldown", lager.Data{"lastScaleUp": cooldown.LastScaleUp, "cooldown": e.conf.ScaleUpCooldown.String()})
			return decision
		}
		decision.Action = models.ScalingActionScaleUp
		decision.Reasons = upReasons
		return decision
	}

	if e.scaleDownSatisfied(snapshot) {
		if snapshot.InstanceCount <= e.conf.MinInstances {
			decision.Reasons = []string{fmt.Sprintf("scale-down refused: already at minimum of %d instances", e.conf.MinInstances)}
			e.logger.Info("scale-down-refused-at-capacity", lager.Data{"instanceCount": snapshot.InstanceCount, "min": e.conf.MinInstances})
			return decision
		}
		if !cooldown.ScaleDownAllowed(now, e.conf.ScaleDownCooldown) {
			decision.Reasons = []string{fmt.Sprintf("scale-down refused: cooldown %s not elapsed", e.conf.ScaleDownCooldown)}
			e.logger.Info("scale-down-refused-in-cooldown", lager.Data{"lastScaleDown": cooldown.LastScaleDown, "cooldown": e.conf.ScaleDownCooldown.String()})
			return decision
		}
		decision.Action = models.ScalingActionScaleDown
		decision.Reasons = []string{fmt.Sprintf("CPU %.2f, latency %s and per-instance rate %.1f/min all below scale-down thresholds",
			snapshot.AvgCPU, snapshot.AvgLatency, snapshot.RatePerInstance)}
		return decision
	}

	decision.Reasons = []string{"no threshold breached"}
	return decision
}

func (e *Engine) scaleUpReasons(snapshot *models.MetricsSnapshot) []string {
	reasons := []string{}
	if snapshot.HasCPUEvidence() && snapshot.AvgCPU > e.conf.CpuUpThreshold {
		reasons = append(reasons, fmt.Sprintf("CPU average %.2f above threshold %.2f", snapshot.AvgCPU, e.conf.CpuUpThreshold))
	}
	if snapshot.HasLatencyEvidence() && snapshot.AvgLatency > e.conf.LatencyThreshold {
		reasons = append(reasons, fmt.Sprintf("latency average %s above threshold %s", snapshot.AvgLatency, e.conf.LatencyThreshold))
	}
	if snapshot.HasRateEvidence() && snapshot.RatePerInstance > e.conf.RateThreshold {
		reasons = append(reasons, fmt.Sprintf("per-instance rate %.1f/min above threshold %.1f/min", snapshot.RatePerInstance, e.conf.RateThreshold))
	}
	return reasons
}

// scaleDownSatisfied requires all three signals below half of their
// scale-up thresholds. A signal with no evidence blocks scale-down; an
// idle fleet that served no requests in the window satisfies the latency
// bound vacuously.
func (e *Engine) scaleDownSatisfied(snapshot *models.MetricsSnapshot) bool {
	cpuLow := snapshot.HasCPUEvidence() && snapshot.AvgCPU < e.conf.CpuDownThreshold

	latencyLow := snapshot.HasLatencyEvidence() && snapshot.AvgLatency < e.conf.LatencyThreshold/2
	if !latencyLow && snapshot.HasRateEvidence() && snapshot.TotalRate == 0 {
		latencyLow = true
	}

	rateLow := snapshot.HasRateEvidence() && snapshot.RatePerInstance < e.conf.RateThreshold/2

	return cpuLow && latencyLow && rateLow
}
