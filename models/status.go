package models

type FleetStatus struct {
	InstanceCount int              `json:"instance_count"`
	Instances     []*Instance      `json:"instances"`
	LastSnapshot  *MetricsSnapshot `json:"last_snapshot,omitempty"`
	RecentEvents  []*Event         `json:"recent_events,omitempty"`
}
