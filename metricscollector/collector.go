package metricscollector

import (
	"time"

	"fleetscaler/models"
	"fleetscaler/runtime"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
)

// AccessMetricsSource provides recent proxy access records, from which
// request rate and response latency are derived.
type AccessMetricsSource interface {
	Recent(window time.Duration) ([]models.AccessRecord, error)
}

// Collector samples load signals from the container runtime and the
// proxy access records. It is read-only: sampling never mutates the
// fleet or the proxy.
type Collector struct {
	logger  lager.Logger
	clock   clock.Clock
	runtime runtime.ContainerRuntime
	source  AccessMetricsSource
	window  time.Duration
}

func NewCollector(logger lager.Logger, clock clock.Clock, containerRuntime runtime.ContainerRuntime, source AccessMetricsSource, window time.Duration) *Collector {
	return &Collector{
		logger:  logger.Session("metricscollector"),
		clock:   clock,
		runtime: containerRuntime,
		source:  source,
		window:  window,
	}
}

func (c *Collector) Sample() (*models.MetricsSnapshot, error) {
	workers, err := c.runtime.List()
	if err != nil {
		c.logger.Error("failed-to-list-workers", err)
		return nil, err
	}

	snapshot := &models.MetricsSnapshot{
		AvgCPU:          models.MetricUnknown,
		AvgLatency:      models.LatencyUnknown,
		TotalRate:       models.MetricUnknown,
		RatePerInstance: models.MetricUnknown,
		InstanceCount:   len(workers),
		Timestamp:       c.clock.Now().UnixNano(),
	}

	cpuSum := 0.0
	cpuReadings := 0
	for _, w := range workers {
		cpu, err := c.runtime.Stats(w.ContainerId)
		if err != nil {
			// An unavailable reading is excluded from the average
			// rather than counted as zero.
			c.logger.Info("cpu-reading-unavailable", lager.Data{"containerId": w.ContainerId, "error": err.Error()})
			continue
		}
		cpuSum += cpu
		cpuReadings++
	}
	if cpuReadings > 0 {
		snapshot.AvgCPU = cpuSum / float64(cpuReadings)
	}

	records, err := c.source.Recent(c.window)
	if err != nil {
		c.logger.Error("failed-to-read-access-records", err)
		return snapshot, nil
	}

	if len(records) > 0 {
		var latencySum time.Duration
		for _, r := range records {
			latencySum += r.Latency
		}
		snapshot.AvgLatency = latencySum / time.Duration(len(records))
	}

	snapshot.TotalRate = float64(len(records)) / c.window.Minutes()
	if len(workers) > 0 {
		snapshot.RatePerInstance = snapshot.TotalRate / float64(len(workers))
	}

	return snapshot, nil
}
