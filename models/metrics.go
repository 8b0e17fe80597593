package models

import "time"

// MetricUnknown marks an aggregate for which no readings were available.
// The policy engine treats it as no evidence rather than as zero load.
const (
	MetricUnknown  float64       = -1
	LatencyUnknown time.Duration = -1
)

type MetricsSnapshot struct {
	AvgCPU          float64       `json:"avg_cpu"`
	AvgLatency      time.Duration `json:"avg_latency"`
	TotalRate       float64       `json:"total_rate"`
	RatePerInstance float64       `json:"rate_per_instance"`
	InstanceCount   int           `json:"instance_count"`
	Timestamp       int64         `json:"timestamp"`
}

func (m *MetricsSnapshot) HasCPUEvidence() bool {
	return m.AvgCPU != MetricUnknown
}

func (m *MetricsSnapshot) HasLatencyEvidence() bool {
	return m.AvgLatency >= 0
}

func (m *MetricsSnapshot) HasRateEvidence() bool {
	return m.RatePerInstance != MetricUnknown
}

type AccessRecord struct {
	Timestamp time.Time
	Latency   time.Duration
}
